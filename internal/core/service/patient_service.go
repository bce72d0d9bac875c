package service

import (
	"context"
	"sort"
	"time"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// slotTimes is the bookable half-hour grid for every doctor.
var slotTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// PatientService implements the patient portal: profile, appointments,
// care team, prescriptions and slot booking.
type PatientService struct {
	accounts      ports.AccountRepository
	profiles      ports.ProfileRepository
	appointments  ports.AppointmentRepository
	prescriptions ports.PrescriptionRepository
}

func NewPatientService(accounts ports.AccountRepository, profiles ports.ProfileRepository, appointments ports.AppointmentRepository, prescriptions ports.PrescriptionRepository) *PatientService {
	return &PatientService{
		accounts:      accounts,
		profiles:      profiles,
		appointments:  appointments,
		prescriptions: prescriptions,
	}
}

func (s *PatientService) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

func (s *PatientService) UpdateProfile(ctx context.Context, accountID string, input ports.UpdateProfileInput) (*domain.Account, error) {
	return s.accounts.UpdateName(ctx, accountID, input.FirstName, input.LastName)
}

func (s *PatientService) Appointments(ctx context.Context, accountID string) ([]domain.Appointment, error) {
	return s.appointments.ListByPatient(ctx, accountID)
}

// CareTeam returns the distinct doctors the patient has appointments with.
func (s *PatientService) CareTeam(ctx context.Context, accountID string) ([]domain.DoctorProfile, error) {
	appts, err := s.appointments.ListByPatient(ctx, accountID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(appts))
	ids := make([]string, 0, len(appts))
	for _, a := range appts {
		if _, ok := seen[a.DoctorID]; ok {
			continue
		}
		seen[a.DoctorID] = struct{}{}
		ids = append(ids, a.DoctorID)
	}
	if len(ids) == 0 {
		return []domain.DoctorProfile{}, nil
	}

	return s.profiles.FindDoctorsByIDs(ctx, ids)
}

func (s *PatientService) Prescriptions(ctx context.Context, accountID string) ([]domain.Prescription, error) {
	return s.prescriptions.ListByPatient(ctx, accountID)
}

// AvailableSlots returns the slot grid for a doctor on a date minus slots
// already booked.
func (s *PatientService) AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	booked, err := s.appointments.ListByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, a := range booked {
		taken[a.Time] = struct{}{}
	}

	free := make([]string, 0, len(slotTimes))
	for _, t := range slotTimes {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	sort.Strings(free)
	return free, nil
}

// BookAppointment claims a slot for the patient. Booking an already-taken
// slot fails with ErrSlotTaken: the list check is a fast path, the store's
// unique slot index settles concurrent bookings.
func (s *PatientService) BookAppointment(ctx context.Context, accountID string, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if !validSlotTime(input.Time) {
		return nil, domain.ErrInvalidSlot
	}

	booked, err := s.appointments.ListByDoctorAndDate(ctx, input.DoctorID, input.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range booked {
		if a.Time == input.Time {
			return nil, domain.ErrSlotTaken
		}
	}

	return s.appointments.Create(ctx, &domain.Appointment{
		PatientID: accountID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Time:      input.Time,
		Reason:    input.Reason,
		Status:    "scheduled",
		CreatedAt: time.Now().UTC(),
	})
}

func validSlotTime(t string) bool {
	for _, s := range slotTimes {
		if s == t {
			return true
		}
	}
	return false
}
