package order

import (
	"fmt"

	"mealdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Delivering ──> Delivered
//
// Pending orders wait for a driver to claim them. Delivering orders are on the
// road and close out via dual confirmation. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created at checkout.
	// Orders in this status have no driver and are claimable.
	Pending

	// Delivering indicates a driver has claimed the order and is delivering it.
	Delivering

	// Delivered indicates both driver and customer confirmed the delivery.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Delivering: "Delivering",
		Delivered:  "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Delivering: "Delivering",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Delivering and Delivered; Unknown and any other
// values are rejected. Used to vet Status values coming from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateClaim checks if the status allows a driver claim without performing
// the transition. Only Pending orders are claimable; a claim on a Delivering or
// Delivered order must leave it untouched.
func (s Status) ValidateClaim() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment: a driver is set if and only if the order left Pending.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && (s == Delivering || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to Delivering.
//
// Valid transitions:
//   - Pending -> Delivering
//
// Returns (0, error) if the order is not claimable from the current status.
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}

	return Delivering, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Delivering -> Delivered
//
// Returns (0, error) for any other starting status. Delivered is terminal.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}
