package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medicore/hospital-api/internal/core/domain"
)

const prescriptionCollection = "prescriptions"

// PrescriptionRepository reads prescriptions for the patient portal.
// Writing happens through clinical tooling outside this API.
type PrescriptionRepository struct {
	coll *mongo.Collection
}

func NewPrescriptionRepository(db *mongo.Database) *PrescriptionRepository {
	return &PrescriptionRepository{coll: db.Collection(prescriptionCollection)}
}

type mongoPrescription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PatientID  string             `bson:"patient_id"`
	DoctorID   string             `bson:"doctor_id"`
	Medication string             `bson:"medication"`
	Dosage     string             `bson:"dosage"`
	Refills    int                `bson:"refills"`
	IssuedAt   int64              `bson:"issued_at"`
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	cur, err := r.coll.Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer cur.Close(ctx)

	scripts := []domain.Prescription{}
	for cur.Next(ctx) {
		var m mongoPrescription
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode prescription: %w", err)
		}
		scripts = append(scripts, domain.Prescription{
			ID:         m.ID.Hex(),
			PatientID:  m.PatientID,
			DoctorID:   m.DoctorID,
			Medication: m.Medication,
			Dosage:     m.Dosage,
			Refills:    m.Refills,
			IssuedAt:   unixToTime(m.IssuedAt),
		})
	}
	return scripts, cur.Err()
}
