package order

import (
	"fmt"
	"sync"
	"time"

	"pcshop/internal/domain"
	"pcshop/internal/domain/customer"
	"pcshop/internal/domain/payment"
	"pcshop/internal/domain/pc"
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// Order binds a customer, a credit card, and the ordered models. The models
// slice is snapshotted at construction; the model objects themselves stay
// shared, so parts added to a custom model after placement remain visible
// through the order. State transitions are mutex-guarded: a race between
// Cancel and Fulfill lets exactly one succeed.
type Order struct {
	id       string
	customer *customer.Customer
	card     *payment.CreditCard
	models   []pc.Model
	placedAt time.Time

	mu     sync.Mutex
	status Status
}

func New(id string, c *customer.Customer, card *payment.CreditCard, models []pc.Model) (*Order, error) {
	if c == nil {
		return nil, fmt.Errorf("order: %w: customer is required", domain.ErrValidation)
	}
	if card == nil {
		return nil, fmt.Errorf("order: %w: credit card is required", domain.ErrValidation)
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("order: %w: at least one model is required", domain.ErrValidation)
	}
	return &Order{
		id:       id,
		customer: c,
		card:     card,
		models:   append([]pc.Model(nil), models...),
		placedAt: time.Now().UTC(),
		status:   StatusPlaced,
	}, nil
}

func (o *Order) ID() string { return o.id }

func (o *Order) Customer() *customer.Customer { return o.customer }

func (o *Order) CreditCard() *payment.CreditCard { return o.card }

func (o *Order) Models() []pc.Model { return append([]pc.Model(nil), o.models...) }

func (o *Order) PlacedAt() time.Time { return o.placedAt }

func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Cancel transitions PLACED -> CANCELLED. The status is unchanged after a
// failed attempt.
func (o *Order) Cancel() error {
	return o.transition(StatusCancelled)
}

// Fulfill transitions PLACED -> FULFILLED.
func (o *Order) Fulfill() error {
	return o.transition(StatusFulfilled)
}

func (o *Order) transition(to Status) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != StatusPlaced {
		return fmt.Errorf("order: %w: order is already %s", domain.ErrInvalidState, o.status)
	}
	o.status = to
	return nil
}
