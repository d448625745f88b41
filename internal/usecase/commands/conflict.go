package commands

import (
	"context"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
)

// ConflictChecker decides whether a proposed window overlaps any occupying
// booking of the target equipment, or of any sibling unit when the equipment
// type is an exclusive pool.
//
// The checker only reads. Lookup failures are escalated as
// errs.ErrConflictLookupFailed and the caller must treat them as a conflict:
// denying a booking we could not verify is preferred over risking a double
// booking.
type ConflictChecker struct {
	lookupTimeout time.Duration
}

func NewConflictChecker(lookupTimeout time.Duration) *ConflictChecker {
	return &ConflictChecker{lookupTimeout: lookupTimeout}
}

// Check returns the occupying bookings whose windows overlap the proposal.
// An empty result means the window is free. exclude skips one booking id so
// an existing booking can be re-validated against its own unchanged window.
//
// The reads pair is passed per call: the advisory pre-check runs against the
// pool while the authoritative re-check inside the booking transaction runs
// against locked state, through the same code path.
func (c *ConflictChecker) Check(
	ctx context.Context,
	catalog CatalogReader,
	occupancy OccupancyReader,
	equipmentID uuid.UUID,
	w booking.Window,
	exclude *uuid.UUID,
) ([]booking.ConflictDetail, error) {
	if equipmentID == uuid.Nil {
		return nil, errs.New("conflict check requires an equipment id")
	}
	if w.IsZero() || !w.Start().Before(w.End()) {
		return nil, booking.ErrInvalidWindow
	}

	if c.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.lookupTimeout)
		defer cancel()
	}

	scope, err := c.resolveScope(ctx, catalog, equipmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConflictLookupFailed)
	}

	occupying, err := occupancy.OccupyingBookings(ctx, scope, w, exclude)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConflictLookupFailed)
	}

	// The store already filters by overlap; re-applying the predicate here
	// keeps the decision correct even against a store that returns a
	// superset.
	var conflicts []booking.ConflictDetail
	for _, o := range occupying {
		if w.Overlaps(o.Window) {
			conflicts = append(conflicts, booking.ConflictDetail{
				BookingID: o.BookingID,
				Window:    o.Window,
			})
		}
	}

	return conflicts, nil
}

// resolveScope widens the lookup to every unit of the type when the type is
// an exclusive pool, so one borrowed unit blocks the whole pool.
func (c *ConflictChecker) resolveScope(ctx context.Context, catalog CatalogReader, equipmentID uuid.UUID) ([]uuid.UUID, error) {
	snap, err := catalog.EquipmentByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if !snap.TypeExclusive {
		return []uuid.UUID{equipmentID}, nil
	}

	unitIDs, err := catalog.UnitIDsOfType(ctx, snap.TypeID)
	if err != nil {
		return nil, err
	}
	if len(unitIDs) == 0 {
		return []uuid.UUID{equipmentID}, nil
	}
	return unitIDs, nil
}
