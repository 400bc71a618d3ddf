// Package driverrepo provides persistence for driver profiles.
package driverrepo

import (
	"mealdash/internal/core/domain/model/driver"
	"mealdash/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverProfileDTO represents the database structure for driver profiles.
// One row per driver, keyed by the driver's identity.
type DriverProfileDTO struct {
	DriverID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsAvailable bool
}

// TableName overrides GORM's default naming to use "driver_profiles".
func (DriverProfileDTO) TableName() string {
	return "driver_profiles"
}

func fromDomain(profile *driver.Profile) DriverProfileDTO {
	return DriverProfileDTO{
		DriverID:    profile.DriverID().Bytes(),
		IsAvailable: profile.IsAvailable(),
	}
}

func toDomain(dto DriverProfileDTO) (*driver.Profile, error) {
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreProfile(driverID, dto.IsAvailable)
}
