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

const billingCollection = "billing"

// BillingRepository stores billing documents.
type BillingRepository struct {
	coll *mongo.Collection
}

func NewBillingRepository(db *mongo.Database) *BillingRepository {
	return &BillingRepository{coll: db.Collection(billingCollection)}
}

type mongoBill struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BillNumber string             `bson:"bill_number"`
	Amount     float64            `bson:"amount"`
	Status     string             `bson:"status"`
	DueDate    int64              `bson:"due_date"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (m mongoBill) toDomain() domain.Bill {
	return domain.Bill{
		ID:         m.ID.Hex(),
		BillNumber: m.BillNumber,
		Amount:     m.Amount,
		Status:     domain.BillStatus(m.Status),
		DueDate:    unixToTime(m.DueDate),
		CreatedAt:  unixToTime(m.CreatedAt),
		UpdatedAt:  unixToTime(m.UpdatedAt),
	}
}

func (r *BillingRepository) List(ctx context.Context) ([]domain.Bill, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cur.Close(ctx)

	bills := []domain.Bill{}
	for cur.Next(ctx) {
		var m mongoBill
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		bills = append(bills, m.toDomain())
	}
	return bills, cur.Err()
}

func (r *BillingRepository) Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	doc := mongoBill{
		BillNumber: bill.BillNumber,
		Amount:     bill.Amount,
		Status:     string(bill.Status),
		DueDate:    bill.DueDate.Unix(),
		CreatedAt:  bill.CreatedAt.Unix(),
		UpdatedAt:  bill.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bill: %w", err)
	}

	created := *bill
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BillingRepository) Update(ctx context.Context, id string, update domain.BillUpdate) (*domain.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBillNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.BillNumber != nil {
		set["bill_number"] = *update.BillNumber
	}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.DueDate != nil {
		set["due_date"] = update.DueDate.Unix()
	}

	var m mongoBill
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("update bill: %w", err)
	}

	bill := m.toDomain()
	return &bill, nil
}

func (r *BillingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBillNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}

func (r *BillingRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count bills: %w", err)
	}
	return n, nil
}
