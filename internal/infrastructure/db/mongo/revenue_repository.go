package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medicore/hospital-api/internal/core/domain"
)

const revenueCollection = "revenue"

// RevenueRepository stores revenue entries.
type RevenueRepository struct {
	coll *mongo.Collection
}

func NewRevenueRepository(db *mongo.Database) *RevenueRepository {
	return &RevenueRepository{coll: db.Collection(revenueCollection)}
}

type mongoRevenue struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      int64              `bson:"date"`
	Amount    float64            `bson:"amount"`
	Type      string             `bson:"type"`
	CreatedAt int64              `bson:"created_at"`
}

func (m mongoRevenue) toDomain() domain.RevenueEntry {
	return domain.RevenueEntry{
		ID:        m.ID.Hex(),
		Date:      unixToTime(m.Date),
		Amount:    m.Amount,
		Type:      m.Type,
		CreatedAt: unixToTime(m.CreatedAt),
	}
}

func (r *RevenueRepository) List(ctx context.Context) ([]domain.RevenueEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer cur.Close(ctx)

	entries := []domain.RevenueEntry{}
	for cur.Next(ctx) {
		var m mongoRevenue
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode revenue: %w", err)
		}
		entries = append(entries, m.toDomain())
	}
	return entries, cur.Err()
}

func (r *RevenueRepository) Create(ctx context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error) {
	doc := mongoRevenue{
		Date:      entry.Date.Unix(),
		Amount:    entry.Amount,
		Type:      entry.Type,
		CreatedAt: entry.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert revenue: %w", err)
	}

	created := *entry
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RevenueRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count revenue: %w", err)
	}
	return n, nil
}

// Total sums the amount field across all entries with a single aggregation.
func (r *RevenueRepository) Total(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode revenue total: %w", err)
		}
	}
	return result.Total, cur.Err()
}
