package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/metrics"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceAllocator reserves invoice numbers. InvoiceCounter is the production
// implementation.
type InvoiceAllocator interface {
	Next(ctx context.Context) (int64, error)
}

type OrderRepository struct {
	coll     *mongo.Collection
	invoices InvoiceAllocator
	now      func() time.Time
}

func NewOrderRepository(db *mongo.Database, invoices InvoiceAllocator) *OrderRepository {
	return &OrderRepository{
		coll:     db.Collection(CollectionOrders),
		invoices: invoices,
		now:      time.Now,
	}
}

// Create persists a new order. An order without an invoice gets the next one
// from the allocator; if that fails the order is not written.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	if order.Invoice == 0 {
		invoice, err := r.invoices.Next(ctx)
		if err != nil {
			metrics.OrderCreateFailures.Inc()
			return err
		}
		order.Invoice = invoice
		metrics.InvoicesAssigned.Inc()
	}

	now := r.now()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.Cart == nil {
		order.Cart = []map[string]interface{}{}
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		metrics.OrderCreateFailures.Inc()
		return fmt.Errorf("failed to insert order %d: %w", order.Invoice, err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns a customer's orders, newest invoice first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "invoice", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus changes only the status and updatedAt of an order; the invoice
// is fixed once the order exists.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	var order models.Order
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": r.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// LastInvoice returns the highest stored invoice, or 0 for an empty store.
func (r *OrderRepository) LastInvoice(ctx context.Context) (int64, error) {
	var doc struct {
		Invoice int64 `bson:"invoice"`
	}
	err := r.coll.FindOne(ctx,
		bson.M{},
		options.FindOne().
			SetSort(bson.D{{Key: "invoice", Value: -1}}).
			SetProjection(bson.M{"invoice": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read last invoice: %w", err)
	}
	return doc.Invoice, nil
}
