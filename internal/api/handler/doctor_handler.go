package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/core/ports"
)

// DoctorHandler serves the doctor directory.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// All lists every doctor profile.
//
// @Summary      List all doctors
// @Tags         doctor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.DoctorProfile
// @Failure      401  {object}  map[string]string
// @Router       /doctor/all [get]
func (h *DoctorHandler) All(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}
