package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// AppointmentRepository defines persistence for appointment documents.
// Slot uniqueness per doctor/date/time is enforced by the store itself, so
// two concurrent bookings of one slot resolve to one success and one
// ErrSlotTaken from Create.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]domain.Appointment, error)
}

// PrescriptionRepository defines persistence for prescriptions.
type PrescriptionRepository interface {
	ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error)
}

// UpdateProfileInput carries the patient-editable identity fields. Email is
// the login identity and stays immutable.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// BookAppointmentInput is the slot-booking payload.
type BookAppointmentInput struct {
	DoctorID string
	Date     string
	Time     string
	Reason   string
}

// PatientService exposes the patient portal operations. All take the
// authenticated account id established by the auth gate.
type PatientService interface {
	Profile(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID string, input UpdateProfileInput) (*domain.Account, error)
	Appointments(ctx context.Context, accountID string) ([]domain.Appointment, error)
	CareTeam(ctx context.Context, accountID string) ([]domain.DoctorProfile, error)
	Prescriptions(ctx context.Context, accountID string) ([]domain.Prescription, error)
	AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error)
	BookAppointment(ctx context.Context, accountID string, input BookAppointmentInput) (*domain.Appointment, error)
}

// DoctorService exposes the doctor directory.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error)
}

// AdminStats aggregates record counts for the admin dashboard.
type AdminStats struct {
	Patients     int64   `json:"patients"`
	Doctors      int64   `json:"doctors"`
	Admins       int64   `json:"admins"`
	Bills        int64   `json:"bills"`
	Claims       int64   `json:"claims"`
	RevenueCount int64   `json:"revenueEntries"`
	RevenueTotal float64 `json:"revenueTotal"`
}

// AdminService exposes admin-only aggregates.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
}
