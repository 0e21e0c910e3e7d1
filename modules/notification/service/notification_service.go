package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/constants"
	coreentity "vetcare-api/core/entity"
	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/params"
	"vetcare-api/core/queue"
	appointmententity "vetcare-api/modules/appointment/entity"
	authentity "vetcare-api/modules/auth/entity"
	caselogentity "vetcare-api/modules/caselog/entity"
	inventoryentity "vetcare-api/modules/inventory/entity"
	"vetcare-api/modules/notification/dto"
	"vetcare-api/modules/notification/entity"
	"vetcare-api/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues delayed reminder tasks. Satisfied by
// queue.Client.
type ReminderScheduler interface {
	EnqueueAppointmentReminder(ctx context.Context, p queue.ReminderPayload, delay time.Duration) error
}

// ApproverDirectory lists the users holding an approving role, used to fan
// out urgent case alerts.
type ApproverDirectory interface {
	ListByRole(ctx context.Context, role authentity.UserRole) ([]authentity.User, error)
}

type NotificationServiceInterface interface {
	List(ctx context.Context, userID string, qp params.QueryParams) (*coreentity.Pagination[dto.NotificationResponse], *errors.AppError)
	MarkRead(ctx context.Context, userID, notificationID string) *errors.AppError
	MarkAllRead(ctx context.Context, userID string) (*dto.MarkAllReadResponse, *errors.AppError)
	CountUnread(ctx context.Context, userID string) (*dto.UnreadCountResponse, *errors.AppError)
	Notify(ctx context.Context, userID string, nType entity.NotificationType, title, body string)
}

type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	scheduler ReminderScheduler
	approvers ApproverDirectory
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, scheduler ReminderScheduler, approvers ApproverDirectory) *NotificationService {
	return &NotificationService{
		repo:      repo,
		scheduler: scheduler,
		approvers: approvers,
	}
}

func (s *NotificationService) List(ctx context.Context, userID string, qp params.QueryParams) (*coreentity.Pagination[dto.NotificationResponse], *errors.AppError) {
	all := s.repo.ListByUser(userID)
	start, end := qp.Slice(len(all))
	page := dto.ToNotificationResponses(all[start:end])
	return coreentity.NewPagination(page, len(all), qp.Page, qp.Limit), nil
}

// MarkRead flips one notification. The notification must belong to the
// caller.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) *errors.AppError {
	n := s.repo.GetByID(notificationID)
	if n == nil || n.UserID != userID {
		return errors.NewAppError(errors.ErrNotFound, "Notification not found", nil)
	}
	s.repo.MarkRead(notificationID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (*dto.MarkAllReadResponse, *errors.AppError) {
	updated := s.repo.MarkAllRead(userID)
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID string) (*dto.UnreadCountResponse, *errors.AppError) {
	return &dto.UnreadCountResponse{Count: s.repo.CountUnread(userID)}, nil
}

// Notify writes a notification for the user. Failures here never bubble up
// to the triggering operation.
func (s *NotificationService) Notify(ctx context.Context, userID string, nType entity.NotificationType, title, body string) {
	s.repo.Insert(&entity.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      nType,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
}

// AppointmentConfirmed notifies the parties and schedules a reminder ahead
// of the slot.
func (s *NotificationService) AppointmentConfirmed(ctx context.Context, a *appointmententity.Appointment) {
	body := fmt.Sprintf("%s on %s at %s", a.Procedure, a.Date, a.Time)
	s.Notify(ctx, a.AssignedTo, entity.TypeAppointmentConfirmed, "Appointment confirmed", body)
	if a.RequestedBy != "" && a.RequestedBy != a.AssignedTo {
		s.Notify(ctx, a.RequestedBy, entity.TypeAppointmentConfirmed, "Your request was confirmed", body)
	}
	s.scheduleReminder(ctx, a)
}

// AppointmentRequested notifies the vet a request was filed for.
func (s *NotificationService) AppointmentRequested(ctx context.Context, a *appointmententity.Appointment) {
	if a.AssignedTo == "" {
		return
	}
	s.Notify(ctx, a.AssignedTo, entity.TypeAppointmentRequested, "New appointment request",
		fmt.Sprintf("%s requested: %s", a.RequestedBy, a.Procedure))
}

// UrgentCaseReported fans an alert out to every approving user.
func (s *NotificationService) UrgentCaseReported(ctx context.Context, c *caselogentity.Case) {
	body := fmt.Sprintf("Severity %s case reported for animal %s", c.Severity, c.AnimalID)
	for _, role := range []authentity.UserRole{authentity.RoleHeadVet, authentity.RoleAdmin} {
		users, err := s.approvers.ListByRole(ctx, role)
		if err != nil {
			logger.Error("NotificationService:UrgentCaseReported:ListByRole:Error", "role", role, "error", err)
			continue
		}
		for _, u := range users {
			s.Notify(ctx, u.ID, entity.TypeUrgentCase, "Urgent case reported", body)
		}
	}
}

// LowStock alerts admins that an item just dropped below its threshold.
func (s *NotificationService) LowStock(ctx context.Context, item *inventoryentity.Item) {
	users, err := s.approvers.ListByRole(ctx, authentity.RoleAdmin)
	if err != nil {
		logger.Error("NotificationService:LowStock:ListByRole:Error", "error", err)
		return
	}
	body := fmt.Sprintf("%s is down to %d (threshold %d)", item.ItemName, item.Quantity, item.Threshold)
	for _, u := range users {
		s.Notify(ctx, u.ID, entity.TypeLowStock, "Low stock", body)
	}
}

func (s *NotificationService) scheduleReminder(ctx context.Context, a *appointmententity.Appointment) {
	if a.Date == "" || a.Time == "" {
		return
	}
	slot, err := time.ParseInLocation(constants.DateLayout+" "+constants.TimeLayout, a.Date+" "+a.Time, time.Local)
	if err != nil {
		logger.Warn("NotificationService:ScheduleReminder:BadSlot", "appointment_id", a.ID, "error", err)
		return
	}

	lead := time.Duration(config.Get().Queue.ReminderLeadMins) * time.Minute
	delay := time.Until(slot.Add(-lead))
	if delay < 0 {
		logger.Debug("NotificationService:ScheduleReminder:SlotInPast", "appointment_id", a.ID)
		return
	}

	payload := queue.ReminderPayload{
		AppointmentID: a.ID,
		UserID:        a.AssignedTo,
		Date:          a.Date,
		Time:          a.Time,
		Procedure:     a.Procedure,
	}
	if err := s.scheduler.EnqueueAppointmentReminder(ctx, payload, delay); err != nil {
		logger.Error("NotificationService:ScheduleReminder:Enqueue:Error", "appointment_id", a.ID, "error", err)
	}
}

// HandleAppointmentReminder is the asynq handler for reminder tasks. It
// converts the payload back into an in-app notification.
func (s *NotificationService) HandleAppointmentReminder(ctx context.Context, t *asynq.Task) error {
	var p queue.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	s.Notify(ctx, p.UserID, entity.TypeAppointmentReminder, "Upcoming appointment",
		fmt.Sprintf("%s on %s at %s", p.Procedure, p.Date, p.Time))

	logger.Info("NotificationService:HandleAppointmentReminder:Delivered",
		"appointment_id", p.AppointmentID, "user_id", p.UserID)
	return nil
}
