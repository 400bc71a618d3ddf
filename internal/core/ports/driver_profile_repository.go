package ports

import (
	"context"

	"mealdash/internal/core/domain/model/driver"
	"mealdash/internal/core/domain/model/kernel"
)

// DriverProfileRepository defines the persistence contract for driver profiles.
type DriverProfileRepository interface {
	// Add persists a new driver profile.
	Add(ctx context.Context, profile *driver.Profile) error

	// Update persists changes to an existing driver profile.
	Update(ctx context.Context, profile *driver.Profile) error

	// Get retrieves a driver profile by the driver's identifier.
	Get(ctx context.Context, driverID kernel.UUID) (*driver.Profile, error)
}
