package response

import (
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	EquipmentID    uuid.UUID `json:"equipmentId"`
	EquipmentName  string    `json:"equipmentName"`
	RequesterID    uuid.UUID `json:"requesterId"`
	RequesterEmail string    `json:"requesterEmail"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		EquipmentID:    v.EquipmentID,
		EquipmentName:  v.EquipmentName,
		RequesterID:    v.RequesterID,
		RequesterEmail: v.RequesterEmail,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
		Status:         v.Status,
		Note:           v.Note,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type ConflictResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
}

type BreachResponse struct {
	Threshold string `json:"threshold"`
	Limit     int    `json:"limit"`
}

// DecisionResponse is the structured verdict returned by validate and by a
// refused create. Accepted create responses carry the new booking id instead.
type DecisionResponse struct {
	Accepted  bool               `json:"accepted"`
	Reason    string             `json:"reason,omitempty"`
	Message   string             `json:"message,omitempty"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
	Breach    *BreachResponse    `json:"breach,omitempty"`
}

func FromDecision(d booking.Decision) *DecisionResponse {
	resp := &DecisionResponse{
		Accepted: d.Accepted,
		Reason:   string(d.Reason),
		Message:  d.Message,
	}
	for _, c := range d.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			BookingID: c.BookingID,
			StartAt:   c.Window.Start(),
			EndAt:     c.Window.End(),
		})
	}
	if d.Breach != nil {
		resp.Breach = &BreachResponse{
			Threshold: d.Breach.Threshold,
			Limit:     d.Breach.Limit,
		}
	}
	return resp
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}
