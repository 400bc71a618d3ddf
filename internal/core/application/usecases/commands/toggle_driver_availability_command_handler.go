package commands

import (
	"context"
	"errors"

	"mealdash/internal/core/domain/model/driver"
	"mealdash/internal/pkg/errs"
)

// ToggleDriverAvailabilityCommandHandler flips a driver's availability flag.
// A driver toggling for the first time gets a profile created on the fly.
type ToggleDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewToggleDriverAvailabilityCommandHandler creates a handler for availability toggles.
func NewToggleDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) ToggleDriverAvailabilityCommandHandler {
	return ToggleDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle and returns the new availability value.
func (h *ToggleDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleDriverAvailabilityCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.DriverProfileRepository()

	profile, err := profileRepo.Get(ctx, cmd.DriverID())
	switch {
	case err == nil:
		profile.ToggleAvailability()
		if err = profileRepo.Update(ctx, profile); err != nil {
			return false, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if profile, err = driver.NewProfile(cmd.DriverID()); err != nil {
			return false, err
		}
		profile.ToggleAvailability()
		if err = profileRepo.Add(ctx, profile); err != nil {
			return false, err
		}
	default:
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return profile.IsAvailable(), nil
}
