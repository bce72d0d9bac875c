package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// BillingHandler handles billing CRUD.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type createBillRequest struct {
	BillNumber string  `json:"billNumber" validate:"required"`
	Amount     float64 `json:"amount"     validate:"required,gt=0"`
	Status     string  `json:"status,omitempty"`
	DueDate    string  `json:"dueDate"    validate:"required"`
}

type updateBillRequest struct {
	BillNumber *string  `json:"billNumber,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Status     *string  `json:"status,omitempty"`
	DueDate    *string  `json:"dueDate,omitempty"`
}

// List returns all bills.
//
// @Summary      List bills
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Bill
// @Failure      401  {object}  map[string]string
// @Router       /billing [get]
func (h *BillingHandler) List(c echo.Context) error {
	bills, err := h.service.ListBills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bills)
}

// Create stores a new bill.
//
// @Summary      Create a bill
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBillRequest  true  "Bill details"
// @Success      201   {object}  domain.Bill
// @Failure      400   {object}  map[string]string
// @Router       /billing [post]
func (h *BillingHandler) Create(c echo.Context) error {
	var req createBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bill, err := h.service.CreateBill(c.Request().Context(), ports.CreateBillInput{
		BillNumber: req.BillNumber,
		Amount:     req.Amount,
		Status:     domain.BillStatus(req.Status),
		DueDate:    req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bill)
}

// Update patches a bill in place and returns the stored document.
//
// @Summary      Update a bill
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Bill id"
// @Param        body  body      updateBillRequest  true  "Fields to change"
// @Success      200   {object}  domain.Bill
// @Failure      404   {object}  map[string]string
// @Router       /billing/{id} [put]
func (h *BillingHandler) Update(c echo.Context) error {
	var req updateBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := domain.BillUpdate{
		BillNumber: req.BillNumber,
		Amount:     req.Amount,
	}
	if req.Status != nil {
		status := domain.BillStatus(*req.Status)
		update.Status = &status
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.ErrInvalidDate
		}
		update.DueDate = &dueDate
	}

	bill, err := h.service.UpdateBill(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bill)
}

// Delete removes a bill.
//
// @Summary      Delete a bill
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Bill id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /billing/{id} [delete]
func (h *BillingHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteBill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bill deleted"})
}
