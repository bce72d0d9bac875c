package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medicore/hospital-api/internal/core/domain"
)

const appointmentCollection = "appointments"

// AppointmentRepository stores appointment documents.
type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID string             `bson:"patient_id"`
	DoctorID  string             `bson:"doctor_id"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Reason    string             `bson:"reason"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

func (m mongoAppointment) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:        m.ID.Hex(),
		PatientID: m.PatientID,
		DoctorID:  m.DoctorID,
		Date:      m.Date,
		Time:      m.Time,
		Reason:    m.Reason,
		Status:    m.Status,
		CreatedAt: unixToTime(m.CreatedAt),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	doc := mongoAppointment{
		PatientID: appt.PatientID,
		DoctorID:  appt.DoctorID,
		Date:      appt.Date,
		Time:      appt.Time,
		Reason:    appt.Reason,
		Status:    appt.Status,
		CreatedAt: appt.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlotTaken
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appt
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return r.list(ctx, bson.M{"patient_id": patientID})
}

func (r *AppointmentRepository) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]domain.Appointment, error) {
	return r.list(ctx, bson.M{"doctor_id": doctorID, "date": date})
}

func (r *AppointmentRepository) list(ctx context.Context, filter bson.M) ([]domain.Appointment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	appts := []domain.Appointment{}
	for cur.Next(ctx) {
		var m mongoAppointment
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appts = append(appts, m.toDomain())
	}
	return appts, cur.Err()
}

// EnsureIndexes creates the lookup indexes the patient portal queries use
// and the unique slot index concurrent bookings race on. Like the email
// index on accounts, slot uniqueness is enforced by the store so two
// simultaneous bookings resolve to one success and one ErrSlotTaken.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "doctor_id", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
