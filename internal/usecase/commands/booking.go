package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/equipment"
	"equiplend/internal/domain/user"
	"equiplend/internal/pkg/clock"
	"equiplend/internal/pkg/config"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	EquipmentID uuid.UUID
	RequesterID uuid.UUID
	Window      booking.Window
	Note        string
}

type ValidateBookingInput struct {
	EquipmentID      uuid.UUID
	RequesterID      uuid.UUID
	Window           booking.Window
	ExcludeBookingID *uuid.UUID
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Decision  booking.Decision
}

type BookingCommands interface {
	Validate(ctx context.Context, in ValidateBookingInput) (booking.Decision, error)
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	Approve(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) (booking.Decision, error)
	Reject(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error
	Cancel(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error
	Checkout(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error
	Return(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error
}

type bookingCommands struct {
	uow     shared.UnitOfWork
	checker *ConflictChecker
	policy  booking.Policy
	clk     clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) BookingCommands {
	return &bookingCommands{
		uow:     uow,
		checker: NewConflictChecker(cfg.LookupTimeout),
		policy: booking.Policy{
			MaxDurationDays: cfg.MaxDurationDays,
			MinAdvanceHours: cfg.MinAdvanceHours,
		},
		clk: clk,
	}
}

// Validate runs the full admission sequence against pool-backed reads and
// reports the outcome without writing anything. Checks run cheapest-first
// and stop at the first failure, so the occupancy lookup only happens for
// requests that already passed every local check.
func (c *bookingCommands) Validate(ctx context.Context, in ValidateBookingInput) (booking.Decision, error) {
	return c.validate(ctx, c.uow.CommandReads(), in)
}

func (c *bookingCommands) validate(ctx context.Context, reads shared.CommandReads, in ValidateBookingInput) (booking.Decision, error) {
	// 1. Requester eligibility.
	requester, err := reads.UserByID(ctx, in.RequesterID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return booking.Reject(booking.ReasonNotEligible, "requester not found"), nil
		}
		return booking.Decision{}, errs.Wrap(err, "failed to load requester")
	}
	if !requester.MayBook() {
		return booking.Reject(booking.ReasonNotEligible, "requester may not book equipment"), nil
	}

	// 2. Structural window.
	if in.Window.IsZero() || !in.Window.Start().Before(in.Window.End()) {
		return booking.Reject(booking.ReasonInvalidWindow, "window must satisfy start < end"), nil
	}

	// 3. Policy thresholds.
	if breach := c.policy.Check(c.clk.Now(), in.Window); breach != nil {
		return booking.RejectWithBreach(*breach, breach.String()), nil
	}

	// 4. Equipment state.
	equip, err := reads.EquipmentByID(ctx, in.EquipmentID)
	if err != nil {
		if errors.Is(err, errs.ErrEquipmentNotFound) {
			return booking.Reject(booking.ReasonResourceUnavailable, "equipment not found"), nil
		}
		return booking.Decision{}, errs.Wrap(err, "failed to load equipment")
	}
	if !equip.IsBookable() {
		return booking.Reject(booking.ReasonResourceUnavailable, "equipment is not bookable"), nil
	}

	// 5. Conflict.
	conflicts, err := c.checker.Check(ctx, reads, reads, in.EquipmentID, in.Window, in.ExcludeBookingID)
	if err != nil {
		if errors.Is(err, errs.ErrConflictLookupFailed) {
			// Fail safe: an unverifiable window is treated as occupied.
			slog.Error("occupancy lookup failed, denying booking",
				"equipment_id", in.EquipmentID, "error", err)
			return booking.Reject(booking.ReasonSchedulingConflict, "availability could not be verified"), nil
		}
		return booking.Decision{}, errs.Wrap(err, "conflict check failed")
	}
	if len(conflicts) > 0 {
		return booking.RejectWithConflicts(conflicts, "window overlaps an existing booking"), nil
	}

	return booking.Accept(), nil
}

// Create validates and persists a pending booking. The validation is
// repeated inside the transaction against locked state, and the insert
// itself is guarded by the exclusion constraint, so a race that slips past
// the advisory check still cannot produce a double booking.
func (c *bookingCommands) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	decision, err := c.Validate(ctx, ValidateBookingInput{
		EquipmentID: in.EquipmentID,
		RequesterID: in.RequesterID,
		Window:      in.Window,
	})
	if err != nil {
		return nil, err
	}
	if !decision.Accepted {
		return &CreateBookingResult{Decision: decision}, nil
	}

	var result CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		equip, err := tx.Reads().EquipmentByID(ctx, in.EquipmentID)
		if err != nil {
			return errs.Wrap(err, "failed to load equipment in transaction")
		}
		if equip.TypeExclusive {
			if err := tx.Equipment().LockType(ctx, equip.TypeID); err != nil {
				return errs.Wrap(err, "failed to lock equipment type")
			}
		}

		decision, err := c.validate(ctx, tx.Reads(), ValidateBookingInput{
			EquipmentID: in.EquipmentID,
			RequesterID: in.RequesterID,
			Window:      in.Window,
		})
		if err != nil {
			return err
		}
		if !decision.Accepted {
			result.Decision = decision
			return nil
		}

		b, err := booking.NewBooking(in.EquipmentID, in.RequesterID, in.Window, in.Note)
		if err != nil {
			return errs.Wrap(err, "failed to build booking")
		}

		id, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			if errors.Is(err, errs.ErrBookingConflict) {
				result.Decision = booking.Reject(booking.ReasonSchedulingConflict, "window was taken concurrently")
				return nil
			}
			return errs.Wrap(err, "failed to create booking")
		}

		result.BookingID = id
		result.Decision = decision
		return c.enqueueNotification(ctx, tx, "booking.requested", id, in.RequesterID)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Approve moves a pending booking to approved. The window is re-validated
// excluding the booking itself so approving never legitimizes an overlap
// that appeared after the request was filed.
func (c *bookingCommands) Approve(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) (booking.Decision, error) {
	if err := requireRole(actor, user.RoleAdmin, user.RoleStaff); err != nil {
		return booking.Decision{}, err
	}

	var decision booking.Decision
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		conflicts, err := c.checker.Check(ctx, tx.Reads(), tx.Reads(), b.EquipmentID(), b.Window(), &bookingID)
		if err != nil {
			if errors.Is(err, errs.ErrConflictLookupFailed) {
				decision = booking.Reject(booking.ReasonSchedulingConflict, "availability could not be verified")
				return nil
			}
			return errs.Wrap(err, "conflict check failed")
		}
		if len(conflicts) > 0 {
			decision = booking.RejectWithConflicts(conflicts, "window overlaps an existing booking")
			return nil
		}

		if err := b.Approve(); err != nil {
			return errs.Mark(errs.Wrap(err, "approve rejected"), errs.ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, b.Status()); err != nil {
			return errs.Wrap(err, "failed to persist approval")
		}

		decision = booking.Accept()
		return c.enqueueNotification(ctx, tx, "booking.approved", bookingID, b.RequesterID())
	})
	if err != nil {
		return booking.Decision{}, err
	}
	return decision, nil
}

func (c *bookingCommands) Reject(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin, user.RoleStaff); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Reject(); err != nil {
			return errs.Mark(errs.Wrap(err, "reject rejected"), errs.ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, b.Status()); err != nil {
			return errs.Wrap(err, "failed to persist rejection")
		}
		return c.enqueueNotification(ctx, tx, "booking.rejected", bookingID, b.RequesterID())
	})
}

// Cancel is allowed for the requester themselves or for staff.
func (c *bookingCommands) Cancel(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.RequesterID() != actor.ID {
			if err := requireRole(actor, user.RoleAdmin, user.RoleStaff); err != nil {
				return err
			}
		}
		if err := b.Cancel(); err != nil {
			return errs.Mark(errs.Wrap(err, "cancel rejected"), errs.ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, b.Status()); err != nil {
			return errs.Wrap(err, "failed to persist cancellation")
		}
		return c.enqueueNotification(ctx, tx, "booking.cancelled", bookingID, b.RequesterID())
	})
}

// Checkout hands the equipment over: the booking becomes active and the
// unit is marked borrowed.
func (c *bookingCommands) Checkout(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin, user.RoleStaff); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Checkout(); err != nil {
			return errs.Mark(errs.Wrap(err, "checkout rejected"), errs.ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, b.Status()); err != nil {
			return errs.Wrap(err, "failed to persist checkout")
		}
		if err := tx.Equipment().UpdateStatus(ctx, b.EquipmentID(), equipment.StatusBorrowed); err != nil {
			return errs.Wrap(err, "failed to mark equipment borrowed")
		}
		return c.enqueueNotification(ctx, tx, "booking.checked_out", bookingID, b.RequesterID())
	})
}

// Return completes an active booking and puts the unit back in service.
func (c *bookingCommands) Return(ctx context.Context, actor shared.UserSnapshot, bookingID uuid.UUID) error {
	if err := requireRole(actor, user.RoleAdmin, user.RoleStaff); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Complete(); err != nil {
			return errs.Mark(errs.Wrap(err, "return rejected"), errs.ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, b.Status()); err != nil {
			return errs.Wrap(err, "failed to persist return")
		}
		if err := tx.Equipment().UpdateStatus(ctx, b.EquipmentID(), equipment.StatusReady); err != nil {
			return errs.Wrap(err, "failed to mark equipment ready")
		}
		return c.enqueueNotification(ctx, tx, "booking.returned", bookingID, b.RequesterID())
	})
}

func (c *bookingCommands) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booking")
	}
	return booking.ReconstructBooking(
		snap.ID, snap.EquipmentID, snap.RequesterID,
		snap.Window, snap.Status, snap.Note,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func (c *bookingCommands) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, bookingID, requesterID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"booking_id":   bookingID.String(),
		"requester_id": requesterID.String(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, c.clk.Now()); err != nil {
		return errs.Wrap(err, "failed to enqueue notification")
	}
	return nil
}

func requireRole(actor shared.UserSnapshot, roles ...user.Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return errs.Mark(errs.New("actor role not permitted"), errs.ErrForbidden)
}

