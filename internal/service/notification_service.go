package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rehab-center/clinic-service/internal/events"
	"github.com/rehab-center/clinic-service/internal/realtime"
)

// Notifier pushes an event to an actor's live connection, if any.
// Satisfied by realtime.Registry.
type Notifier interface {
	Notify(name, event string, payload any)
}

// NotificationService turns domain events into realtime pushes.
// Delivery is best-effort: a disconnected recipient is not an error.
type NotificationService struct {
	dispatcher events.Dispatcher
	notifier   Notifier
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, notifier Notifier, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDoctorApproved, n.handleDoctorApproved)
	n.dispatcher.Subscribe(events.EventDoctorRejected, n.handleDoctorRejected)
	n.dispatcher.Subscribe(events.EventLeaveApproved, n.handleLeaveDecision)
	n.dispatcher.Subscribe(events.EventLeaveRejected, n.handleLeaveDecision)
}

func (n *NotificationService) handleDoctorApproved(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DoctorDecisionPayload)
	if !ok {
		return nil
	}
	n.logger.Info("DoctorApproved", zap.String("doctor_id", payload.DoctorID))
	// doctors register on the realtime channel under their email
	n.notifier.Notify(payload.DoctorEmail, realtime.EventApprovalUpdate, realtime.StatusUpdate{
		Message: fmt.Sprintf("Congratulations, Dr. %s! Your account has been approved by the admin.", payload.DoctorName),
		Status:  "Approved",
	})
	return nil
}

func (n *NotificationService) handleDoctorRejected(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DoctorDecisionPayload)
	if !ok {
		return nil
	}
	n.logger.Info("DoctorRejected", zap.String("doctor_id", payload.DoctorID))
	n.notifier.Notify(payload.DoctorEmail, realtime.EventApprovalUpdate, realtime.StatusUpdate{
		Message: fmt.Sprintf("Sorry, Dr. %s, your registration has been rejected.", payload.DoctorName),
		Status:  "Rejected",
	})
	return nil
}

func (n *NotificationService) handleLeaveDecision(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LeaveDecisionPayload)
	if !ok {
		return nil
	}
	n.logger.Info("LeaveDecision", zap.String("leave_id", payload.LeaveID), zap.String("status", string(payload.Status)))

	verdict := "approved"
	if event.Type == events.EventLeaveRejected {
		verdict = "rejected"
	}
	n.notifier.Notify(payload.Name, realtime.EventLeaveUpdate, realtime.StatusUpdate{
		Message: fmt.Sprintf("Your leave from %s to %s was %s.", payload.FromDate, payload.ToDate, verdict),
		Status:  string(payload.Status),
	})
	return nil
}
