package database

import (
	"context"
	"fmt"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const invoiceCounterID = "invoice"

// InvoiceCounter hands out invoice numbers from a single counter document.
// Each call is one atomic findAndModify, so concurrent writers never see the
// same value. The counter stores how many invoices were issued; the invoice
// itself is FirstInvoice + seq - 1.
type InvoiceCounter struct {
	coll *mongo.Collection
}

func NewInvoiceCounter(db *mongo.Database) *InvoiceCounter {
	return &InvoiceCounter{coll: db.Collection(CollectionCounters)}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Next reserves and returns the next invoice number.
func (c *InvoiceCounter) Next(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := c.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": invoiceCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	if doc.Seq < 1 {
		return 0, fmt.Errorf("invoice counter returned sequence %d", doc.Seq)
	}
	return models.FirstInvoice + doc.Seq - 1, nil
}

// Seed moves the counter forward so that the next invoice follows
// lastInvoice. It never moves the counter backwards.
func (c *InvoiceCounter) Seed(ctx context.Context, lastInvoice int64) error {
	if lastInvoice < models.FirstInvoice {
		return nil
	}
	_, err := c.coll.UpdateOne(ctx,
		bson.M{"_id": invoiceCounterID},
		bson.M{"$max": bson.M{"seq": lastInvoice - models.FirstInvoice + 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to seed invoice counter: %w", err)
	}
	return nil
}
