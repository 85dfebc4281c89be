package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ibeloyar/cupcake/internal/model"
	"github.com/ibeloyar/cupcake/pgk/observable"
	"go.uber.org/zap"
)

// Order keeps the state of the order being assembled. Every operation swaps in
// a new snapshot and returns it. Operations are serialised so subscribers are
// notified in the order the snapshots were committed.
type Order struct {
	mu      sync.Mutex
	pricing *Pricing
	state   *observable.Value[model.OrderUiState]
	lg      *zap.SugaredLogger
}

func NewOrder(p *Pricing, lg *zap.SugaredLogger) *Order {
	o := &Order{
		pricing: p,
		lg:      lg,
	}
	o.state = observable.NewValue(o.newState())

	return o
}

func (o *Order) newState() model.OrderUiState {
	return model.OrderUiState{
		ID:            uuid.NewString(),
		Price:         o.pricing.zeroPrice(),
		PickupOptions: []string{},
	}
}

func (o *Order) State() model.OrderUiState {
	return o.state.Load()
}

func (o *Order) Subscribe(fn func(model.OrderUiState)) (cancel func()) {
	return o.state.Subscribe(fn)
}

func (o *Order) PickupOptions() []string {
	return o.pricing.PickupOptions()
}

func (o *Order) SetQuantity(numberCupcakes int) model.OrderUiState {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.state.Update(func(s model.OrderUiState) model.OrderUiState {
		s.Quantity = numberCupcakes
		s.Price = o.pricing.CalculatePrice(numberCupcakes, s.Date)
		return s
	})
	o.lg.Debugf("order %s: quantity set to %d, price %s", next.ID, next.Quantity, next.Price)

	return next
}

// SetFlavor sets the single flavor of the whole order. The price is not affected.
func (o *Order) SetFlavor(desiredFlavor string) model.OrderUiState {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.state.Update(func(s model.OrderUiState) model.OrderUiState {
		s.Flavor = desiredFlavor
		return s
	})
	o.lg.Debugf("order %s: flavor set to %q", next.ID, next.Flavor)

	return next
}

func (o *Order) SetDate(pickupDate string) model.OrderUiState {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := o.state.Update(func(s model.OrderUiState) model.OrderUiState {
		s.Date = pickupDate
		s.Price = o.pricing.CalculatePrice(s.Quantity, pickupDate)
		return s
	})
	o.lg.Debugf("order %s: pickup date set to %q, price %s", next.ID, next.Date, next.Price)

	return next
}

// ResetOrder replaces the order with a fresh one. Pickup options are left
// empty, callers list them with PickupOptions.
func (o *Order) ResetOrder() model.OrderUiState {
	o.mu.Lock()
	defer o.mu.Unlock()

	prev := o.state.Load()
	next := o.newState()
	o.state.Store(next)
	o.lg.Infof("order %s reset, new order %s", prev.ID, next.ID)

	return next
}
