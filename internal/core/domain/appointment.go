package domain

import (
	"errors"
	"time"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot already booked")
	ErrInvalidSlot         = errors.New("invalid appointment slot")
)

// Appointment links a patient to a doctor at a half-hour slot.
// Date is "2006-01-02", Time is "15:04".
type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	DoctorID  string    `json:"doctorId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Prescription is issued to a patient; read-only through the patient portal.
type Prescription struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patientId"`
	DoctorID   string    `json:"doctorId"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage"`
	Refills    int       `json:"refills"`
	IssuedAt   time.Time `json:"issuedAt"`
}
