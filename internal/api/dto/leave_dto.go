package dto

import (
	"time"

	"github.com/rehab-center/clinic-service/internal/domain"
)

// LeaveRequestPayload payload for submitting a leave request.
type LeaveRequestPayload struct {
	Name     string `json:"name"`
	Reason   string `json:"reason"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// LeaveResponse is the public shape of a leave request.
type LeaveResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Reason    string             `json:"reason"`
	FromDate  string             `json:"fromDate"`
	ToDate    string             `json:"toDate"`
	Status    domain.LeaveStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewLeaveResponse maps a domain leave.
func NewLeaveResponse(leave *domain.Leave) LeaveResponse {
	return LeaveResponse{
		ID:        leave.ID,
		Name:      leave.Name,
		Reason:    leave.Reason,
		FromDate:  leave.FromDate,
		ToDate:    leave.ToDate,
		Status:    leave.Status,
		CreatedAt: leave.CreatedAt,
	}
}

// NewLeaveResponses maps a slice.
func NewLeaveResponses(leaves []domain.Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, NewLeaveResponse(&leaves[i]))
	}
	return out
}
