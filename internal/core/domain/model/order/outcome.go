package order

// Outcome is the tagged result of a lifecycle transition attempt.
//
// Rejected transitions are a deliberate no-op towards the caller: a late claim,
// a confirm by the wrong actor, or a repeated attempt leaves the order exactly
// as it was. The tag records why, so handlers and logs can tell a rejection
// apart from a success without surfacing an error.
type Outcome int

const (
	// OutcomeApplied means the transition ran and mutated the order.
	OutcomeApplied Outcome = iota + 1

	// OutcomeRejectedNotClaimable means a claim hit an order that is not
	// Pending or already has a driver.
	OutcomeRejectedNotClaimable

	// OutcomeRejectedNotActor means the acting principal does not match the
	// order's driver or customer.
	OutcomeRejectedNotActor

	// OutcomeRejectedNotDelivering means a driver confirm hit an order that is
	// not in Delivering status.
	OutcomeRejectedNotDelivering
)

// Applied reports whether the transition mutated the order.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

// String returns the human-readable name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "Applied"
	case OutcomeRejectedNotClaimable:
		return "RejectedNotClaimable"
	case OutcomeRejectedNotActor:
		return "RejectedNotActor"
	case OutcomeRejectedNotDelivering:
		return "RejectedNotDelivering"
	default:
		return "Unknown"
	}
}
