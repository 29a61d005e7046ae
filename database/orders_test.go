package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type stubAllocator struct {
	next  int64
	err   error
	calls int
}

func (s *stubAllocator) Next(context.Context) (int64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	n := s.next
	s.next++
	return n, nil
}

func newOrder() *models.Order {
	return &models.Order{
		SubTotal:      100,
		ShippingCost:  10,
		Total:         110,
		PaymentMethod: "Card",
		UserInfo:      models.UserInfo{Name: "Jane", Email: "jane@example.com"},
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sequential invoices from the counter", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB, NewInvoiceCounter(mt.DB))
		mt.AddMockResponses(
			counterResponse(1), mtest.CreateSuccessResponse(),
			counterResponse(2), mtest.CreateSuccessResponse(),
			counterResponse(3), mtest.CreateSuccessResponse(),
		)

		for i := int64(0); i < 3; i++ {
			order := newOrder()
			if err := repo.Create(context.Background(), order); err != nil {
				mt.Fatalf("Create() #%d error = %v", i, err)
			}
			if want := models.FirstInvoice + i; order.Invoice != want {
				mt.Fatalf("order #%d invoice = %d, want %d", i, order.Invoice, want)
			}
			if order.Status != models.OrderStatusPending {
				mt.Fatalf("default status = %q", order.Status)
			}
			if order.ID.IsZero() || order.CreatedAt.IsZero() {
				mt.Fatal("id and timestamps must be set")
			}
		}
	})

	mt.Run("existing invoice is kept", func(mt *mtest.T) {
		alloc := &stubAllocator{next: 20000}
		repo := NewOrderRepository(mt.DB, alloc)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := newOrder()
		order.Invoice = 12345
		if err := repo.Create(context.Background(), order); err != nil {
			mt.Fatalf("Create() error = %v", err)
		}
		if order.Invoice != 12345 || alloc.calls != 0 {
			mt.Fatalf("invoice = %d, allocator calls = %d", order.Invoice, alloc.calls)
		}
	})

	mt.Run("allocator failure fails the write", func(mt *mtest.T) {
		boom := errors.New("counter unavailable")
		repo := NewOrderRepository(mt.DB, &stubAllocator{err: boom})

		order := newOrder()
		err := repo.Create(context.Background(), order)
		if !errors.Is(err, boom) {
			mt.Fatalf("Create() error = %v, want %v", err, boom)
		}
		if order.Invoice != 0 {
			mt.Fatalf("invoice = %d, want no fallback", order.Invoice)
		}
	})

	mt.Run("invalid order is rejected before allocation", func(mt *mtest.T) {
		alloc := &stubAllocator{next: models.FirstInvoice}
		repo := NewOrderRepository(mt.DB, alloc)

		order := newOrder()
		order.Status = "Shipped"
		if err := repo.Create(context.Background(), order); !errors.Is(err, models.ErrInvalidStatus) {
			mt.Fatalf("Create() error = %v", err)
		}
		if alloc.calls != 0 {
			mt.Fatal("invoice allocated for an invalid order")
		}
	})

	mt.Run("insert error", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB, &stubAllocator{next: models.FirstInvoice})
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		if err := repo.Create(context.Background(), newOrder()); err == nil {
			mt.Fatal("Create() error = nil, want duplicate key error")
		}
	})
}

func TestOrderRepositoryLastInvoice(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty store", func(mt *mtest.T) {
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), CollectionOrders)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := NewOrderRepository(mt.DB, nil).LastInvoice(context.Background())
		if err != nil || got != 0 {
			mt.Fatalf("LastInvoice() = %d, %v; want 0, nil", got, err)
		}
	})

	mt.Run("highest invoice", func(mt *mtest.T) {
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), CollectionOrders)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "invoice", Value: int64(10077)},
		}))

		got, err := NewOrderRepository(mt.DB, nil).LastInvoice(context.Background())
		if err != nil || got != 10077 {
			mt.Fatalf("LastInvoice() = %d, %v; want 10077, nil", got, err)
		}
	})
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects unknown status", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB, nil)
		_, err := repo.UpdateStatus(context.Background(), primitive.NewObjectID(), "Lost")
		if !errors.Is(err, models.ErrInvalidStatus) {
			mt.Fatalf("UpdateStatus() error = %v", err)
		}
	})

	mt.Run("returns updated order", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "invoice", Value: int64(10003)},
			{Key: "status", Value: "Delivered"},
			{Key: "paymentMethod", Value: "Cash"},
		}}))

		order, err := NewOrderRepository(mt.DB, nil).UpdateStatus(context.Background(), id, models.OrderStatusDelivered)
		if err != nil {
			mt.Fatalf("UpdateStatus() error = %v", err)
		}
		if order.Invoice != 10003 || order.Status != models.OrderStatusDelivered {
			mt.Fatalf("order = %+v", order)
		}
	})
}
