package shop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pcshop/internal/domain"
	"pcshop/internal/domain/customer"
	"pcshop/internal/domain/fulfillment"
	"pcshop/internal/domain/order"
	"pcshop/internal/domain/payment"
	"pcshop/internal/domain/pc"
	"pcshop/internal/observability"
	"pcshop/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	serviceName = "pc-shop"
	spanPrefix  = "UC."

	useCasePlaceOrder       = "shop.place_order"
	useCaseCancelOrder      = "shop.cancel_order"
	useCaseFulfillOrder     = "shop.fulfill_order"
	useCaseLargestCustomer  = "shop.largest_customer"
	useCaseMostOrderedModel = "shop.most_ordered_model"
	useCaseMostOrderedPart  = "shop.most_ordered_part"
)

// IDGenerator provides identifiers for newly placed orders.
type IDGenerator interface {
	NewID() string
}

// Service orchestrates order placement, cancellation, and fulfillment
// against an append-only in-memory history, and answers ranked aggregation
// queries over the fulfilled part of that history. Queries recompute from
// history on every call; no running totals are maintained.
type Service struct {
	idGenerator IDGenerator

	mu      sync.RWMutex
	history []*order.Order
	byID    map[string]*order.Order

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

// NewService wires the shop with its id generator and observability ports.
// A nil tel falls back to no-op telemetry.
func NewService(idGen IDGenerator, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Service{
		idGenerator:  idGen,
		byID:         make(map[string]*order.Order),
		log:          tel.Logger().With(observability.F("service", serviceName)),
		tracer:       tel.Tracer(),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

// PlaceOrder validates all inputs before any mutation, constructs a PLACED
// order, and appends it to the history.
func (s *Service) PlaceOrder(ctx context.Context, models []pc.Model, cust *customer.Customer, card *payment.CreditCard) (_ *order.Order, err error) {
	ctx, finish := s.observe(ctx, useCasePlaceOrder)
	defer func() { finish(err) }()
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCasePlaceOrder))

	if len(models) == 0 {
		return nil, fmt.Errorf("shop: %w: at least one model is required", domain.ErrValidation)
	}
	if cust == nil {
		return nil, fmt.Errorf("shop: %w: customer is required", domain.ErrValidation)
	}
	if card == nil {
		return nil, fmt.Errorf("shop: %w: credit card is required", domain.ErrValidation)
	}
	if !card.Valid() {
		return nil, fmt.Errorf("shop: %w: credit card is invalid or expired", domain.ErrValidation)
	}

	o, err := order.New(s.idGenerator.NewID(), cust, card, models)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.history = append(s.history, o)
	s.byID[o.ID()] = o
	s.mu.Unlock()

	logger.Info("order_placed",
		observability.F("order_id", o.ID()),
		observability.F("customer", cust.String()),
		observability.F("models", len(models)),
	)
	return o, nil
}

// CancelOrder delegates to the order's own transition; state errors
// propagate unchanged.
func (s *Service) CancelOrder(ctx context.Context, o *order.Order) (err error) {
	ctx, finish := s.observe(ctx, useCaseCancelOrder)
	defer func() { finish(err) }()
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCaseCancelOrder))

	if o == nil {
		return fmt.Errorf("shop: %w: order is required", domain.ErrValidation)
	}
	if err := o.Cancel(); err != nil {
		return err
	}

	logger.Info("order_cancelled", observability.F("order_id", o.ID()))
	return nil
}

// FulfillOrder transitions the order to FULFILLED and walks its models once,
// producing the manufacturer/part breakdown needed to source it. The
// returned snapshot is local to the call; the shop does not retain it.
func (s *Service) FulfillOrder(ctx context.Context, o *order.Order) (_ *fulfillment.Details, err error) {
	ctx, finish := s.observe(ctx, useCaseFulfillOrder)
	defer func() { finish(err) }()
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCaseFulfillOrder))

	if o == nil {
		return nil, fmt.Errorf("shop: %w: order is required", domain.ErrValidation)
	}
	if err := o.Fulfill(); err != nil {
		return nil, err
	}

	presetOrders := make(map[string]map[string]int)
	warehouseParts := make(map[string]int)
	for _, m := range o.Models() {
		switch m := m.(type) {
		case *pc.PresetModel:
			byModel := presetOrders[m.Manufacturer()]
			if byModel == nil {
				byModel = make(map[string]int)
				presetOrders[m.Manufacturer()] = byModel
			}
			byModel[m.ModelName()]++
		case *pc.CustomModel:
			for _, part := range m.Parts() {
				warehouseParts[part]++
			}
		}
	}

	logger.Info("order_fulfilled", observability.F("order_id", o.ID()))
	return fulfillment.NewDetails(presetOrders, warehouseParts), nil
}

// Order returns the order placed under the given id.
func (s *Service) Order(id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id]
	return o, ok
}

// LargestCustomer returns the customer with the most fulfilled orders, ties
// broken by the ascending "first - last" string form. Nil when no order has
// been fulfilled.
func (s *Service) LargestCustomer(ctx context.Context) *CustomerStats {
	_, finish := s.observe(ctx, useCaseLargestCustomer)
	defer finish(nil)

	counts := make(map[customer.Name]int)
	reps := make(map[customer.Name]*customer.Customer)
	s.mu.RLock()
	for _, o := range s.history {
		if o.Status() != order.StatusFulfilled {
			continue
		}
		n := o.Customer().Name()
		counts[n]++
		if _, seen := reps[n]; !seen {
			reps[n] = o.Customer()
		}
	}
	s.mu.RUnlock()

	if len(counts) == 0 {
		return nil
	}

	var best customer.Name
	max := -1
	for n, c := range counts {
		switch {
		case c > max:
			best, max = n, c
		case c == max && n.String() < best.String():
			best = n
		}
	}
	return &CustomerStats{Customer: reps[best], Orders: max}
}

// MostOrderedModel returns the preset model occurring most often across
// fulfilled orders. Custom models are excluded. Presets group by full
// identity (name, manufacturer, parts); ties break by ascending manufacturer,
// then ascending model name. Nil when no fulfilled order holds a preset.
func (s *Service) MostOrderedModel(ctx context.Context) *ModelStats {
	_, finish := s.observe(ctx, useCaseMostOrderedModel)
	defer finish(nil)

	counts := make(map[string]int)
	reps := make(map[string]*pc.PresetModel)
	s.mu.RLock()
	for _, o := range s.history {
		if o.Status() != order.StatusFulfilled {
			continue
		}
		for _, m := range o.Models() {
			preset, ok := m.(*pc.PresetModel)
			if !ok {
				continue
			}
			k := preset.Key()
			counts[k]++
			if _, seen := reps[k]; !seen {
				reps[k] = preset
			}
		}
	}
	s.mu.RUnlock()

	if len(counts) == 0 {
		return nil
	}

	var best *pc.PresetModel
	max := -1
	for k, c := range counts {
		m := reps[k]
		switch {
		case c > max:
			best, max = m, c
		case c == max && lessPreset(m, best):
			best = m
		}
	}
	return &ModelStats{Model: best, Orders: max}
}

// MostOrderedPart returns the part string occurring most often across the
// custom models of fulfilled orders, each repetition counted. Ties break by
// ascending part string. Nil when no fulfilled order holds a custom part.
func (s *Service) MostOrderedPart(ctx context.Context) *PartsStats {
	_, finish := s.observe(ctx, useCaseMostOrderedPart)
	defer finish(nil)

	counts := make(map[string]int)
	s.mu.RLock()
	for _, o := range s.history {
		if o.Status() != order.StatusFulfilled {
			continue
		}
		for _, m := range o.Models() {
			custom, ok := m.(*pc.CustomModel)
			if !ok {
				continue
			}
			for _, part := range custom.Parts() {
				counts[part]++
			}
		}
	}
	s.mu.RUnlock()

	if len(counts) == 0 {
		return nil
	}

	var best string
	max := -1
	for part, c := range counts {
		switch {
		case c > max:
			best, max = part, c
		case c == max && part < best:
			best = part
		}
	}
	return &PartsStats{Part: best, Orders: max}
}

func lessPreset(a, b *pc.PresetModel) bool {
	if a.Manufacturer() != b.Manufacturer() {
		return a.Manufacturer() < b.Manufacturer()
	}
	return a.ModelName() < b.ModelName()
}

// observe starts a use-case span and returns a finish func recording span
// status, the request counter, and the duration histogram.
func (s *Service) observe(ctx context.Context, useCase string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, spanPrefix+useCase,
		attribute.String("use_case", useCase),
	)
	start := time.Now()

	return ctx, func(err error) {
		outcome, statusText := "success", "OK"
		if err != nil {
			outcome, statusText = "error", err.Error()
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		s.reqCounter.Add(1,
			observability.L("use_case", useCase),
			observability.L("outcome", outcome),
		)
		s.durHistogram.Observe(time.Since(start).Seconds(),
			observability.L("use_case", useCase),
		)
	}
}
