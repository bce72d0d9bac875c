package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// InsuranceHandler handles insurance claim CRUD.
type InsuranceHandler struct {
	service ports.InsuranceService
}

func NewInsuranceHandler(service ports.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{service: service}
}

type createClaimRequest struct {
	ClaimNumber  string  `json:"claimNumber"  validate:"required"`
	PolicyHolder string  `json:"policyHolder" validate:"required"`
	Status       string  `json:"status,omitempty"`
	ClaimAmount  float64 `json:"claimAmount,omitempty"`
}

type updateClaimRequest struct {
	ClaimNumber  *string  `json:"claimNumber,omitempty"`
	PolicyHolder *string  `json:"policyHolder,omitempty"`
	Status       *string  `json:"status,omitempty"`
	ClaimAmount  *float64 `json:"claimAmount,omitempty"`
}

// List returns all insurance claims.
//
// @Summary      List insurance claims
// @Tags         insurance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.InsuranceClaim
// @Failure      401  {object}  map[string]string
// @Router       /insurance [get]
func (h *InsuranceHandler) List(c echo.Context) error {
	claims, err := h.service.ListClaims(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

// Create files a new insurance claim.
//
// @Summary      File an insurance claim
// @Tags         insurance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClaimRequest  true  "Claim details"
// @Success      201   {object}  domain.InsuranceClaim
// @Failure      400   {object}  map[string]string
// @Router       /insurance [post]
func (h *InsuranceHandler) Create(c echo.Context) error {
	var req createClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claim, err := h.service.CreateClaim(c.Request().Context(), ports.CreateClaimInput{
		ClaimNumber:  req.ClaimNumber,
		PolicyHolder: req.PolicyHolder,
		Status:       domain.ClaimStatus(req.Status),
		ClaimAmount:  req.ClaimAmount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, claim)
}

// Update patches a claim in place and returns the stored document.
//
// @Summary      Update an insurance claim
// @Tags         insurance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Claim id"
// @Param        body  body      updateClaimRequest  true  "Fields to change"
// @Success      200   {object}  domain.InsuranceClaim
// @Failure      404   {object}  map[string]string
// @Router       /insurance/{id} [put]
func (h *InsuranceHandler) Update(c echo.Context) error {
	var req updateClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := domain.ClaimUpdate{
		ClaimNumber:  req.ClaimNumber,
		PolicyHolder: req.PolicyHolder,
		ClaimAmount:  req.ClaimAmount,
	}
	if req.Status != nil {
		status := domain.ClaimStatus(*req.Status)
		update.Status = &status
	}

	claim, err := h.service.UpdateClaim(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claim)
}

// Delete removes a claim.
//
// @Summary      Delete an insurance claim
// @Tags         insurance
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Claim id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /insurance/{id} [delete]
func (h *InsuranceHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClaim(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Claim deleted"})
}
