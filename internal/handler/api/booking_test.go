//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/user"
	"equiplend/internal/handler/api"
	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"
	"equiplend/tests/common/builder"
	"equiplend/tests/common/httptest"
	"equiplend/tests/common/testutil"
	commandsmock "equiplend/tests/mock/commands"
	queriesmock "equiplend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()
	s.actorRole = user.RoleMember

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.POST("/bookings/validate", authMiddleware, s.handler.ValidateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/approve", authMiddleware, s.handler.ApproveBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func bookingView(b *builder.BookingBuilder) *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		EquipmentID:    b.EquipmentID,
		EquipmentName:  "Sony FX3",
		RequesterID:    b.RequesterID,
		RequesterEmail: "member@example.com",
		StartAt:        b.StartAt,
		EndAt:          b.EndAt,
		Status:         b.Status,
		CreatedAt:      builder.BaseTime.Add(-time.Hour),
		UpdatedAt:      builder.BaseTime.Add(-time.Hour),
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the new booking id", func() {
		createdID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{
				BookingID: createdID,
				Decision:  booking.Accept(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(createdID, resp.ID)
	})

	s.Run("unauthorized: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("validation: missing required fields return 400", func() {
		for _, field := range []string{"equipment_id", "start_at", "end_at"} {
			body := builder.NewBookingBuilder().BuildCreateRequestDTO()
			testutil.Field(field, nil)(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
			s.Equal(http.StatusBadRequest, rec.Code, "missing %s", field)
		}
	})

	s.Run("validation: inverted window returns the decision with 400", func() {
		body := builder.NewBookingBuilder().
			WithWindow(builder.BaseTime.Add(2*time.Hour), builder.BaseTime).
			BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertDecisionResponse(s.T(), rec, http.StatusBadRequest, "invalid_window")
	})

	s.Run("refusals map to their reason's status", func() {
		cases := []struct {
			decision   booking.Decision
			expectCode int
		}{
			{booking.Reject(booking.ReasonNotEligible, "suspended"), http.StatusForbidden},
			{booking.RejectWithBreach(booking.PolicyBreach{Threshold: "max_duration_days", Limit: 7}, "too long"), http.StatusUnprocessableEntity},
			{booking.Reject(booking.ReasonResourceUnavailable, "retired"), http.StatusNotFound},
			{booking.Reject(booking.ReasonSchedulingConflict, "overlap"), http.StatusConflict},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(&commands.CreateBookingResult{Decision: tc.decision}, nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			httptest.AssertDecisionResponse(s.T(), rec, tc.expectCode, string(tc.decision.Reason))
		}
	})
}

// ================================================================================
// TestValidateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestValidateBooking() {
	url := "/bookings/validate"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("accepted verdicts return 200", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(booking.Accept(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertDecisionResponse(s.T(), rec, http.StatusOK, "")
	})

	s.Run("refused verdicts still return 200", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(booking.Reject(booking.ReasonSchedulingConflict, "overlap"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertDecisionResponse(s.T(), rec, http.StatusOK, "scheduling_conflict")
	})

	s.Run("the requester comes from the token, not the body", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.ValidateBookingInput) (booking.Decision, error) {
				s.Equal(s.actorID, in.RequesterID)
				return booking.Accept(), nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	view := bookingView(b)

	s.Run("success: returns 200 with the booking", func() {
		s.mockQueries.EXPECT().BookingByID(gomock.Any(), b.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, "token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(b.ID, resp.ID)
	})

	s.Run("not found: returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().BookingByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrBookingNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("invalid id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("members are scoped to their own bookings", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ListBookingsFilter) ([]queries.BookingView, error) {
				s.Require().NotNil(f.RequesterID)
				s.Equal(s.actorID, *f.RequesterID)
				return nil, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("staff can filter by requester", func() {
		s.actorRole = user.RoleStaff
		other := uuid.New()
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ListBookingsFilter) ([]queries.BookingView, error) {
				s.Require().NotNil(f.RequesterID)
				s.Equal(other, *f.RequesterID)
				return nil, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?requester_id="+other.String(), nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestApproveBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestApproveBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/approve"

	s.Run("success: returns 200 with the accepted verdict", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).
			Return(booking.Accept(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertDecisionResponse(s.T(), rec, http.StatusOK, "")
	})

	s.Run("a conflict that appeared since filing returns 409", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).
			Return(booking.Reject(booking.ReasonSchedulingConflict, "overlap"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertDecisionResponse(s.T(), rec, http.StatusConflict, "scheduling_conflict")
	})

	s.Run("forbidden actor returns 403", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).
			Return(booking.Decision{}, errs.Mark(errs.New("role"), errs.ErrForbidden)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("unknown booking returns 404", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).
			Return(booking.Decision{}, errs.Mark(errs.New("no rows"), errs.ErrBookingNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("invalid transition returns 409", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any(), id).
			Return(booking.Decision{}, errs.Mark(errs.New("already completed"), errs.ErrInvalidTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("cancelling someone else's booking returns 403", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(errs.Mark(errs.New("role"), errs.ErrForbidden)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
