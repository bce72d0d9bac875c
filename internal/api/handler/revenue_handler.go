package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/core/ports"
)

// RevenueHandler handles revenue recording and listing.
type RevenueHandler struct {
	service ports.RevenueService
}

func NewRevenueHandler(service ports.RevenueService) *RevenueHandler {
	return &RevenueHandler{service: service}
}

type createRevenueRequest struct {
	Date   string  `json:"date,omitempty"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type,omitempty"`
}

// List returns all revenue entries.
//
// @Summary      List revenue entries
// @Tags         revenue
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.RevenueEntry
// @Failure      401  {object}  map[string]string
// @Router       /revenue [get]
func (h *RevenueHandler) List(c echo.Context) error {
	entries, err := h.service.ListRevenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create records a revenue entry. Date defaults to today, type to "daily".
//
// @Summary      Record revenue
// @Tags         revenue
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRevenueRequest  true  "Revenue entry"
// @Success      201   {object}  domain.RevenueEntry
// @Failure      400   {object}  map[string]string
// @Router       /revenue [post]
func (h *RevenueHandler) Create(c echo.Context) error {
	var req createRevenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.RecordRevenue(c.Request().Context(), ports.CreateRevenueInput{
		Date:   req.Date,
		Amount: req.Amount,
		Type:   req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}
