package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/core/ports"
)

// PatientHandler handles the patient portal routes. Every operation is
// scoped to the authenticated account id from the token claims.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type updateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type bookAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date"     validate:"required"`
	Time     string `json:"time"     validate:"required"`
	Reason   string `json:"reason"`
}

type availableSlotsResponse struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// Profile returns the authenticated patient's identity record.
//
// @Summary      Get own profile
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Router       /patient/profile [get]
func (h *PatientHandler) Profile(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	account, err := h.service.Profile(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateProfile changes the patient's display name. Email and role are
// immutable.
//
// @Summary      Update own profile
// @Tags         patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /patient/profile [put]
func (h *PatientHandler) UpdateProfile(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.UpdateProfile(c.Request().Context(), accountID, ports.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Appointments lists the patient's appointments.
//
// @Summary      List own appointments
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /patient/appointments [get]
func (h *PatientHandler) Appointments(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	appts, err := h.service.Appointments(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// CareTeam lists the distinct doctors the patient has appointments with.
//
// @Summary      List own care team
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.DoctorProfile
// @Router       /patient/care-team [get]
func (h *PatientHandler) CareTeam(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	team, err := h.service.CareTeam(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Prescriptions lists the patient's prescriptions.
//
// @Summary      List own prescriptions
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Prescription
// @Router       /patient/prescriptions [get]
func (h *PatientHandler) Prescriptions(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	scripts, err := h.service.Prescriptions(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scripts)
}

// AvailableSlots returns a doctor's free half-hour slots on a date.
//
// @Summary      List a doctor's free slots
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Param        doctorId  query     string  true  "Doctor id"
// @Param        date      query     string  true  "Date (YYYY-MM-DD)"
// @Success      200       {object}  availableSlotsResponse
// @Failure      400       {object}  map[string]string
// @Router       /patient/available-slots [get]
func (h *PatientHandler) AvailableSlots(c echo.Context) error {
	doctorID := c.QueryParam("doctorId")
	date := c.QueryParam("date")
	if doctorID == "" || date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId and date are required")
	}

	slots, err := h.service.AvailableSlots(c.Request().Context(), doctorID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, availableSlotsResponse{DoctorID: doctorID, Date: date, Slots: slots})
}

// BookAppointment claims a slot with a doctor.
//
// @Summary      Book an appointment
// @Tags         patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Appointment request"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /patient/book-appointment [post]
func (h *PatientHandler) BookAppointment(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.BookAppointment(c.Request().Context(), accountID, ports.BookAppointmentInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Reason:   req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appt)
}
