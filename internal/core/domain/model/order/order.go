package order

import (
	"errors"
	"fmt"
	"time"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when attempting to create an order without any lines.
	ErrNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root for the purchase lifecycle. It owns its line
// items, the total frozen at creation, and the delivery state machine that
// coordinates the driver claim and the dual confirmation.
//
// Invariants:
//   - totalPrice always equals the sum of item subtotals at creation time and
//     is never recomputed from live catalog prices
//   - a driver is assigned if and only if status is not Pending
//   - status is Delivered if and only if both driver and customer confirmed
//   - transitions only move forward; Delivered is terminal
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// driverID is the claiming driver (nil while Pending)
	driverID *kernel.UUID

	status     Status
	totalPrice kernel.Price

	driverConfirmed   bool
	customerConfirmed bool

	createdAt time.Time
	items     []Item

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from the checkout line items.
// The total is computed once, here, from the items' frozen prices; it is the
// only place the total is ever derived. Fails with ErrNoItems when items is
// empty - checkout of an empty or fully unresolvable cart must never create an
// order.
func NewOrder(id kernel.UUID, customerID kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalPrice = sumSubtotals(o.items)

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state and re-checks every
// aggregate invariant, so a row that drifted out of sync (total not matching
// items, driver on a Pending order, Delivered without both confirms) is
// rejected instead of silently accepted.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	totalPrice kernel.Price,
	driverConfirmed bool,
	customerConfirmed bool,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		driverID:          driverID,
		status:            status,
		totalPrice:        totalPrice,
		driverConfirmed:   driverConfirmed,
		customerConfirmed: customerConfirmed,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks construction and every aggregate invariant.
// Repositories call this before persisting and after rehydrating.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}

	if err := errors.Join(
		o.id.Validate(),
		o.customerID.Validate(),
		o.status.Validate(),
		o.totalPrice.Validate(),
	); err != nil {
		return err
	}

	if o.driverID != nil {
		if err := o.driverID.Validate(); err != nil {
			return err
		}
	}

	if err := o.status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return err
	}

	if err := o.validateDeliveredConsistency(); err != nil {
		return err
	}

	return o.validateTotal()
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Driver returns the claiming driver's ID, or nil while the order is Pending.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the total frozen at order creation.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// DriverConfirmed reports whether the driver acknowledged the delivery.
func (o *Order) DriverConfirmed() bool {
	return o.driverConfirmed
}

// CustomerConfirmed reports whether the customer acknowledged the delivery.
func (o *Order) CustomerConfirmed() bool {
	return o.customerConfirmed
}

// CreatedAt returns the order creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Claim assigns the order to a driver and moves it to Delivering.
//
// The claim succeeds only on a Pending order with no driver; any other state
// yields OutcomeRejectedNotClaimable and leaves the order untouched, so late
// or repeated claims are harmless no-ops. An error is returned only for an
// invalid driver ID, never for a lost race.
func (o *Order) Claim(driverID kernel.UUID) (Outcome, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	if o.driverID != nil {
		return OutcomeRejectedNotClaimable, nil
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return OutcomeRejectedNotClaimable, nil //nolint:nilerr // rejection is a no-op, not an error
	}

	o.status = newStatus
	o.driverID = &driverID
	return OutcomeApplied, nil
}

// ConfirmByDriver records the driver's delivery acknowledgement.
//
// Only the claiming driver may confirm, and only while the order is
// Delivering. A mismatched actor or wrong status yields a rejection no-op.
// When both confirmations are present afterwards, the order completes.
func (o *Order) ConfirmByDriver(driverID kernel.UUID) (Outcome, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return OutcomeRejectedNotActor, nil
	}

	if o.status != Delivering {
		return OutcomeRejectedNotDelivering, nil
	}

	o.driverConfirmed = true
	o.refreshDelivered()
	return OutcomeApplied, nil
}

// ConfirmByCustomer records the customer's delivery acknowledgement.
//
// Only the order's owner may confirm. There is no status precondition: a
// customer may confirm before the driver does, and the order still only
// completes once both confirmations are present.
func (o *Order) ConfirmByCustomer(customerID kernel.UUID) (Outcome, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	if !o.customerID.IsEqual(customerID) {
		return OutcomeRejectedNotActor, nil
	}

	o.customerConfirmed = true
	o.refreshDelivered()
	return OutcomeApplied, nil
}

// refreshDelivered re-evaluates the completion rule after a confirmation.
// It is the single place the Delivered-iff-both-confirmed invariant is applied.
func (o *Order) refreshDelivered() {
	if !o.driverConfirmed || !o.customerConfirmed {
		return
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return
	}
	o.status = newStatus
}

func (o *Order) validateDeliveredConsistency() error {
	bothConfirmed := o.driverConfirmed && o.customerConfirmed
	if (o.status == Delivered) != bothConfirmed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s does not match confirmations (driver=%t, customer=%t)",
				o.status.String(), o.driverConfirmed, o.customerConfirmed))
	}
	return nil
}

// validateTotal re-checks that totalPrice equals the sum of item subtotals.
// Guards against a partial failure leaving the total and the lines out of sync.
func (o *Order) validateTotal() error {
	expected := sumSubtotals(o.items)
	if !o.totalPrice.IsEqual(expected) {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%s does not equal the sum of item subtotals %s",
				o.totalPrice.String(), expected.String()))
	}
	return nil
}

func sumSubtotals(items []Item) kernel.Price {
	total := kernel.ZeroPrice()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
