package api

import (
	"context"
	"errors"
	"net/http"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/user"
	reqdto "equiplend/internal/handler/dto/request"
	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/handler/middleware"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"
	"equiplend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings commands.BookingCommands
	reads    queries.BookingQueries
}

func NewBookingHandler(bookings commands.BookingCommands, reads queries.BookingQueries) *BookingHandler {
	return &BookingHandler{bookings: bookings, reads: reads}
}

// decisionStatus maps a refusal to its HTTP status. Rejections are expected
// outcomes, so each reason keeps a stable status the frontend can branch on.
func decisionStatus(d booking.Decision) int {
	switch d.Reason {
	case booking.ReasonNotEligible:
		return http.StatusForbidden
	case booking.ReasonInvalidWindow:
		return http.StatusBadRequest
	case booking.ReasonPolicyViolation:
		return http.StatusUnprocessableEntity
	case booking.ReasonResourceUnavailable:
		return http.StatusNotFound
	case booking.ReasonSchedulingConflict:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

// @Summary Create booking
// @Description Request a booking; refusals return the structured decision
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} resdto.DecisionResponse
// @Failure 403 {object} resdto.DecisionResponse
// @Failure 404 {object} resdto.DecisionResponse
// @Failure 409 {object} resdto.DecisionResponse
// @Failure 422 {object} resdto.DecisionResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.ToInput(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.FromDecision(
			booking.Reject(booking.ReasonInvalidWindow, "window must satisfy start < end"),
		))
		return
	}

	result, err := h.bookings.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !result.Decision.Accepted {
		c.JSON(decisionStatus(result.Decision), resdto.FromDecision(result.Decision))
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: result.BookingID})
}

// @Summary Validate booking
// @Description Dry-run the admission checks without creating anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateBookingRequest true "Proposal"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/validate [post]
func (h *BookingHandler) ValidateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ValidateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	decision, err := h.bookings.Validate(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Always 200: the verdict, accepted or not, is the resource requested.
	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.reads.BookingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Members see their own bookings; staff can filter freely
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param equipment_id query string false "Filter by equipment"
// @Param status query []string false "Filter by status"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var f queries.ListBookingsFilter

	if s := c.Query("equipment_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
			return
		}
		f.EquipmentID = &id
	}
	f.Statuses = c.QueryArray("status")

	if actor.Role == user.RoleMember {
		// Members only ever see their own bookings.
		f.RequesterID = &actor.UserID
	} else if s := c.Query("requester_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requester ID"})
			return
		}
		f.RequesterID = &id
	}

	views, err := h.reads.ListBookings(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]*resdto.BookingResponse, 0, len(views))
	for i := range views {
		out = append(out, resdto.FromBookingView(&views[i]))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Approve booking
// @Description Re-validates the window before approving; a conflict that
// @Description appeared since the request was filed refuses the approval
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.DecisionResponse
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	decision, err := h.bookings.Approve(c.Request.Context(), actor.Snapshot(), id)
	if err != nil {
		h.lifecycleError(c, err)
		return
	}

	if !decision.Accepted {
		c.JSON(decisionStatus(decision), resdto.FromDecision(decision))
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}

// @Summary Reject booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.lifecycleNoDecision(c, h.bookings.Reject)
}

// @Summary Cancel booking
// @Description Requester cancels their own booking; staff can cancel any
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.lifecycleNoDecision(c, h.bookings.Cancel)
}

// @Summary Check out booking
// @Description Hand the equipment over; the booking becomes active
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) CheckoutBooking(c *gin.Context) {
	h.lifecycleNoDecision(c, h.bookings.Checkout)
}

// @Summary Return booking
// @Description Take the equipment back; the booking completes
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/return [post]
func (h *BookingHandler) ReturnBooking(c *gin.Context) {
	h.lifecycleNoDecision(c, h.bookings.Return)
}

// lifecycleNoDecision factors the transition endpoints that only report
// success or a mapped failure.
func (h *BookingHandler) lifecycleNoDecision(
	c *gin.Context,
	run func(ctx context.Context, actor shared.UserSnapshot, id uuid.UUID) error,
) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := run(c.Request.Context(), actor.Snapshot(), id); err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) lifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not in a state that allows this action"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
