// Package driver provides the driver profile aggregate. The availability flag
// is orthogonal to the order lifecycle: it only gates which drivers see the
// claimable-orders dashboard, never whether a claim succeeds.
package driver

import (
	"errors"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile is a driver's marketplace profile. New drivers start unavailable
// and toggle themselves on when ready to take deliveries.
type Profile struct {
	driverID    kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewProfile creates a profile for a driver, initially unavailable.
func NewProfile(driverID kernel.UUID) (*Profile, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return &Profile{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreProfile reconstructs a profile from persistent storage.
func RestoreProfile(driverID kernel.UUID, isAvailable bool) (*Profile, error) {
	p, err := NewProfile(driverID)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	return p, nil
}

// Validate ensures the Profile was created through its constructor.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	if err := p.guard.Validate(ErrProfileIsNotConstructed); err != nil {
		return err
	}
	return p.driverID.Validate()
}

// DriverID returns the driver's identifier.
func (p *Profile) DriverID() kernel.UUID {
	return p.driverID
}

// IsAvailable reports whether the driver currently takes deliveries.
func (p *Profile) IsAvailable() bool {
	return p.isAvailable
}

// ToggleAvailability flips the availability flag and returns the new value.
func (p *Profile) ToggleAvailability() bool {
	p.isAvailable = !p.isAvailable
	return p.isAvailable
}
