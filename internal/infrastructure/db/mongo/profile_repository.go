package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medicore/hospital-api/internal/core/domain"
)

const (
	doctorCollection = "doctors"
	adminCollection  = "admins"
)

// ProfileRepository stores the auxiliary role records for doctors and
// admins. Uniqueness is already guaranteed by the accounts collection; no
// extra constraint is needed here.
type ProfileRepository struct {
	doctors *mongo.Collection
	admins  *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		doctors: db.Collection(doctorCollection),
		admins:  db.Collection(adminCollection),
	}
}

type mongoDoctor struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	Email         string             `bson:"email"`
	Specialty     string             `bson:"specialty"`
	LicenseNumber string             `bson:"license_number"`
	PhoneNumber   string             `bson:"phone_number"`
	CreatedAt     int64              `bson:"created_at"`
}

func (m mongoDoctor) toDomain() domain.DoctorProfile {
	return domain.DoctorProfile{
		ID:            m.ID.Hex(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Specialty:     m.Specialty,
		LicenseNumber: m.LicenseNumber,
		PhoneNumber:   m.PhoneNumber,
		CreatedAt:     unixToTime(m.CreatedAt),
	}
}

func (r *ProfileRepository) CreateDoctor(ctx context.Context, profile *domain.DoctorProfile) error {
	doc := mongoDoctor{
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Email:         profile.Email,
		Specialty:     profile.Specialty,
		LicenseNumber: profile.LicenseNumber,
		PhoneNumber:   profile.PhoneNumber,
		CreatedAt:     profile.CreatedAt.Unix(),
	}
	if _, err := r.doctors.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert doctor profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) CreateAdmin(ctx context.Context, profile *domain.AdminProfile) error {
	doc := bson.M{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"email":      profile.Email,
		"created_at": profile.CreatedAt.Unix(),
	}
	if _, err := r.admins.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert admin profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error) {
	cur, err := r.doctors.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []domain.DoctorProfile{}
	for cur.Next(ctx) {
		var m mongoDoctor
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		profiles = append(profiles, m.toDomain())
	}
	return profiles, cur.Err()
}

func (r *ProfileRepository) FindDoctorsByIDs(ctx context.Context, ids []string) ([]domain.DoctorProfile, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []domain.DoctorProfile{}, nil
	}

	cur, err := r.doctors.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []domain.DoctorProfile{}
	for cur.Next(ctx) {
		var m mongoDoctor
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		profiles = append(profiles, m.toDomain())
	}
	return profiles, cur.Err()
}
