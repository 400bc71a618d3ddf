package driverrepo

import (
	"context"
	"errors"

	"mealdash/internal/core/domain/model/driver"
	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverProfileRepository implements DriverProfileRepository using GORM.
type GormDriverProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverProfileRepository creates a new GORM driver profile repository.
func NewGormDriverProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverProfileRepository {
	return &GormDriverProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver profile.
func (r *GormDriverProfileRepository) Add(ctx context.Context, profile *driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(profile.DriverID(), profile)
	return nil
}

// Update saves an existing driver profile.
func (r *GormDriverProfileRepository) Update(ctx context.Context, profile *driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	result := r.db.WithContext(ctx).Model(&DriverProfileDTO{}).
		Where("driver_id = ?", dto.DriverID).
		Select("is_available").
		Updates(map[string]any{"is_available": dto.IsAvailable})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(profile.DriverID(), profile)
	return nil
}

// Get retrieves a driver profile by the driver's identifier.
func (r *GormDriverProfileRepository) Get(ctx context.Context, driverID kernel.UUID) (*driver.Profile, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver profile", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
