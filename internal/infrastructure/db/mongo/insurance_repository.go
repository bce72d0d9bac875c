package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medicore/hospital-api/internal/core/domain"
)

const insuranceCollection = "insurance_claims"

// InsuranceRepository stores insurance claim documents.
type InsuranceRepository struct {
	coll *mongo.Collection
}

func NewInsuranceRepository(db *mongo.Database) *InsuranceRepository {
	return &InsuranceRepository{coll: db.Collection(insuranceCollection)}
}

type mongoClaim struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ClaimNumber  string             `bson:"claim_number"`
	PolicyHolder string             `bson:"policy_holder"`
	Status       string             `bson:"status"`
	ClaimAmount  float64            `bson:"claim_amount"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (m mongoClaim) toDomain() domain.InsuranceClaim {
	return domain.InsuranceClaim{
		ID:           m.ID.Hex(),
		ClaimNumber:  m.ClaimNumber,
		PolicyHolder: m.PolicyHolder,
		Status:       domain.ClaimStatus(m.Status),
		ClaimAmount:  m.ClaimAmount,
		CreatedAt:    unixToTime(m.CreatedAt),
		UpdatedAt:    unixToTime(m.UpdatedAt),
	}
}

func (r *InsuranceRepository) List(ctx context.Context) ([]domain.InsuranceClaim, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer cur.Close(ctx)

	claims := []domain.InsuranceClaim{}
	for cur.Next(ctx) {
		var m mongoClaim
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode claim: %w", err)
		}
		claims = append(claims, m.toDomain())
	}
	return claims, cur.Err()
}

func (r *InsuranceRepository) Create(ctx context.Context, claim *domain.InsuranceClaim) (*domain.InsuranceClaim, error) {
	doc := mongoClaim{
		ClaimNumber:  claim.ClaimNumber,
		PolicyHolder: claim.PolicyHolder,
		Status:       string(claim.Status),
		ClaimAmount:  claim.ClaimAmount,
		CreatedAt:    claim.CreatedAt.Unix(),
		UpdatedAt:    claim.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}

	created := *claim
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *InsuranceRepository) Update(ctx context.Context, id string, update domain.ClaimUpdate) (*domain.InsuranceClaim, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClaimNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.ClaimNumber != nil {
		set["claim_number"] = *update.ClaimNumber
	}
	if update.PolicyHolder != nil {
		set["policy_holder"] = *update.PolicyHolder
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.ClaimAmount != nil {
		set["claim_amount"] = *update.ClaimAmount
	}

	var m mongoClaim
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("update claim: %w", err)
	}

	claim := m.toDomain()
	return &claim, nil
}

func (r *InsuranceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClaimNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClaimNotFound
	}
	return nil
}

func (r *InsuranceRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}
