package queries

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"
	"mealdash/internal/pkg/guard"
)

var (
	ErrViewCartQueryIsNotConstructed = errors.New(
		"ViewCartQuery must be created via NewViewCartQuery constructor",
	)
	ErrSessionIDIsRequired = errs.NewValueIsRequiredError("session id")
)

// ViewCartQuery retrieves the current contents of a session cart with every
// line resolved against the live catalog.
//
// Example:
//
//	query, err := NewViewCartQuery("session-1")
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to view cart: %w", err)
//	}
//
//	fmt.Printf("%d lines, total %s\n", len(view.Lines), view.Total)
type ViewCartQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewViewCartQuery creates a query for a session's cart contents.
func NewViewCartQuery(sessionID string) (ViewCartQuery, error) {
	if sessionID == "" {
		return ViewCartQuery{}, ErrSessionIDIsRequired
	}
	return ViewCartQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ViewCartQuery) Validate() error {
	return q.guard.Validate(ErrViewCartQueryIsNotConstructed)
}

// SessionID returns the session whose cart is viewed.
func (q ViewCartQuery) SessionID() string {
	return q.sessionID
}

// ViewCartQueryResponse is the priced snapshot of a cart. Lines whose menu
// item no longer resolves are absent from both Lines and Total.
type ViewCartQueryResponse struct {
	Lines []CartLine
	Total kernel.Price
}

// CartLine is one resolved cart entry priced at the current catalog price.
type CartLine struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Price
	Subtotal   kernel.Price
}
