package service

import (
	"context"
	"sync"
	"time"

	"vetcare-api/core/constants"
	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	"vetcare-api/modules/appointment/dto"
	"vetcare-api/modules/appointment/entity"
	authentity "vetcare-api/modules/auth/entity"
)

// Actor is the authenticated caller as seen by the scheduler.
type Actor struct {
	ID   string
	Role authentity.UserRole
}

// UserCatalog validates assignment targets against the user directory.
type UserCatalog interface {
	GetByID(ctx context.Context, id string) (*authentity.User, error)
}

// AnimalCatalog validates that referenced animals exist.
type AnimalCatalog interface {
	AnimalExists(ctx context.Context, id string) (bool, error)
}

// Notifier receives scheduling events. Implementations must not mutate the
// appointment.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, appointment *entity.Appointment)
	AppointmentRequested(ctx context.Context, appointment *entity.Appointment)
}

type AppointmentServiceInterface interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
	Resolve(ctx context.Context, actor Actor, appointmentID string, action entity.Action) (*dto.ResolveAppointmentResponse, *errors.AppError)
	ConfirmSchedule(ctx context.Context, actor Actor, appointmentID string, req *dto.ConfirmScheduleRequest) (*dto.AppointmentResponse, *errors.AppError)
	ListForDate(ctx context.Context, date string) ([]dto.AppointmentResponse, *errors.AppError)
	MarkedDates(ctx context.Context) (*dto.MarkedDatesResponse, *errors.AppError)
	SelectDay(ctx context.Context, date string) (*dto.DaySelectionResponse, *errors.AppError)
	ListUnscheduledRequests(ctx context.Context) ([]dto.AppointmentResponse, *errors.AppError)
}

type AppointmentStore interface {
	Insert(appointment *entity.Appointment)
	GetByID(id string) *entity.Appointment
	Replace(appointment *entity.Appointment) bool
	Remove(id string) bool
	List() []*entity.Appointment
	ListByDate(date string) []*entity.Appointment
	Exists(id string) bool
	HasDateTime(date, timeSlot, excludeID string) bool
}

type appointmentService struct {
	// mu serializes the mutating operations. The store guards each call on
	// its own, but Create, Resolve and ConfirmSchedule are check-then-write
	// sequences and the check must still hold at the write.
	mu       sync.Mutex
	store    AppointmentStore
	users    UserCatalog
	animals  AnimalCatalog
	notifier Notifier
}

func NewAppointmentService(store AppointmentStore, users UserCatalog, animals AnimalCatalog, notifier Notifier) AppointmentServiceInterface {
	return &appointmentService{
		store:    store,
		users:    users,
		animals:  animals,
		notifier: notifier,
	}
}

// Create files a new appointment. Approving roles book themselves directly
// and the result is Confirmed; restricted roles must name an approving vet
// and the result is a Requested appointment assigned to that vet.
func (s *appointmentService) Create(ctx context.Context, actor Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	logger.Info("AppointmentService:Create:Start", "actor_id", actor.ID, "role", actor.Role)

	if len(req.AnimalIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "At least one animal is required", nil)
	}
	if req.Procedure == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Procedure is required", nil)
	}
	for _, animalID := range req.AnimalIDs {
		exists, err := s.animals.AnimalExists(ctx, animalID)
		if err != nil {
			logger.Error("AppointmentService:Create:AnimalExists:Error", "error", err, "animal_id", animalID)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up animal", err)
		}
		if !exists {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown animal: "+animalID, nil)
		}
	}
	if appErr := validateSlotFormat(req.Date, req.Time); appErr != nil {
		return nil, appErr
	}

	appointment := &entity.Appointment{
		AnimalIDs:   append([]string(nil), req.AnimalIDs...),
		Date:        req.Date,
		Time:        req.Time,
		Procedure:   req.Procedure,
		RequestedBy: actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if actor.Role.CanApprove() {
		if req.Date == "" || req.Time == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Date and time are required when booking directly", nil)
		}
		appointment.Status = entity.StatusConfirmed
		appointment.AssignedTo = actor.ID
	} else {
		if req.TargetVetID == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "A target vet is required", nil)
		}
		target, err := s.users.GetByID(ctx, req.TargetVetID)
		if err != nil {
			logger.Error("AppointmentService:Create:GetTargetVet:Error", "error", err, "target_vet_id", req.TargetVetID)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up target vet", err)
		}
		if target == nil || !target.Role.CanApprove() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Target vet must hold an approving role", nil)
		}
		appointment.Status = entity.StatusRequested
		appointment.AssignedTo = req.TargetVetID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// IDs are short, so collisions are unlikely but possible against the
	// live set. Retry until unique.
	for {
		id, err := utils.GenerateID()
		if err != nil {
			logger.Error("AppointmentService:Create:GenerateID:Error", "error", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate appointment id", err)
		}
		if !s.store.Exists(id) {
			appointment.ID = id
			break
		}
	}

	s.store.Insert(appointment)

	if appointment.Status == entity.StatusConfirmed {
		s.notifier.AppointmentConfirmed(ctx, appointment)
	} else {
		s.notifier.AppointmentRequested(ctx, appointment)
	}

	logger.Info("AppointmentService:Create:Success", "appointment_id", appointment.ID, "status", appointment.Status)
	return dto.ToAppointmentResponse(appointment), nil
}

// Resolve applies approve, reject or cancel. Only approving roles may
// resolve; the transition table decides what each action is allowed to do.
func (s *appointmentService) Resolve(ctx context.Context, actor Actor, appointmentID string, action entity.Action) (*dto.ResolveAppointmentResponse, *errors.AppError) {
	logger.Info("AppointmentService:Resolve:Start", "appointment_id", appointmentID, "action", action, "actor_id", actor.ID)

	if !action.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown action: "+string(action), nil)
	}
	if !actor.Role.CanApprove() {
		return nil, errors.NewAppError(errors.ErrForbidden, "Your role cannot resolve appointments", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := s.store.GetByID(appointmentID)
	if appointment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	outcome, ok := entity.ResolveTransition(appointment.Status, action)
	if !ok {
		logger.Warn("AppointmentService:Resolve:InvalidTransition", "appointment_id", appointmentID, "status", appointment.Status, "action", action)
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"Cannot "+string(action)+" an appointment in status "+string(appointment.Status), nil)
	}

	if outcome.Remove {
		s.store.Remove(appointmentID)
		logger.Info("AppointmentService:Resolve:Removed", "appointment_id", appointmentID, "action", action)
		return &dto.ResolveAppointmentResponse{Removed: true}, nil
	}

	// Confirmed always carries a slot. Unscheduled requests go through
	// ConfirmSchedule, which picks the slot and checks it for conflicts.
	if outcome.Next == entity.StatusConfirmed && !appointment.Scheduled() {
		logger.Warn("AppointmentService:Resolve:Unscheduled", "appointment_id", appointmentID, "action", action)
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"Cannot approve an appointment without a scheduled slot", nil)
	}

	appointment.Status = outcome.Next
	appointment.AssignedTo = actor.ID
	s.store.Replace(appointment)

	if appointment.Status == entity.StatusConfirmed {
		s.notifier.AppointmentConfirmed(ctx, appointment)
	}

	logger.Info("AppointmentService:Resolve:Success", "appointment_id", appointmentID, "status", appointment.Status)
	return &dto.ResolveAppointmentResponse{Appointment: dto.ToAppointmentResponse(appointment)}, nil
}

// ConfirmSchedule pins a Requested appointment to a slot. The slot is
// global: any other appointment already holding the same (date, time) pair
// blocks it, regardless of vet or animals.
func (s *appointmentService) ConfirmSchedule(ctx context.Context, actor Actor, appointmentID string, req *dto.ConfirmScheduleRequest) (*dto.AppointmentResponse, *errors.AppError) {
	logger.Info("AppointmentService:ConfirmSchedule:Start", "appointment_id", appointmentID, "date", req.Date, "time", req.Time)

	if !actor.Role.CanApprove() {
		return nil, errors.NewAppError(errors.ErrForbidden, "Your role cannot confirm schedules", nil)
	}
	if req.Date == "" || req.Time == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date and time are required", nil)
	}
	if appErr := validateSlotFormat(req.Date, req.Time); appErr != nil {
		return nil, appErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := s.store.GetByID(appointmentID)
	if appointment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}
	if appointment.Status != entity.StatusRequested {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"Only requested appointments can be scheduled, current status is "+string(appointment.Status), nil)
	}

	if s.store.HasDateTime(req.Date, req.Time, appointmentID) {
		logger.Warn("AppointmentService:ConfirmSchedule:Conflict", "date", req.Date, "time", req.Time)
		return nil, errors.NewAppError(errors.ErrConflict, "This slot is already booked", nil)
	}

	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.Status = entity.StatusConfirmed
	appointment.AssignedTo = actor.ID
	s.store.Replace(appointment)

	s.notifier.AppointmentConfirmed(ctx, appointment)

	logger.Info("AppointmentService:ConfirmSchedule:Success", "appointment_id", appointmentID, "date", req.Date, "time", req.Time)
	return dto.ToAppointmentResponse(appointment), nil
}

func (s *appointmentService) ListForDate(ctx context.Context, date string) ([]dto.AppointmentResponse, *errors.AppError) {
	if appErr := validateSlotFormat(date, ""); appErr != nil {
		return nil, appErr
	}
	return dto.ToAppointmentResponses(s.store.ListByDate(date)), nil
}

// MarkedDates builds the calendar-highlight payload: one dot per distinct
// status present on each scheduled date.
func (s *appointmentService) MarkedDates(ctx context.Context) (*dto.MarkedDatesResponse, *errors.AppError) {
	dates := make(map[string]entity.DateMarker)
	for _, a := range s.store.List() {
		if a.Date == "" {
			continue
		}
		marker := dates[a.Date]
		marker.Marked = true
		color := entity.MarkerColor(a.Status)
		seen := false
		for _, dot := range marker.Dots {
			if dot.Key == string(a.Status) {
				seen = true
				break
			}
		}
		if !seen {
			marker.Dots = append(marker.Dots, entity.DateDot{Key: string(a.Status), Color: color})
		}
		dates[a.Date] = marker
	}
	return &dto.MarkedDatesResponse{Dates: dates}, nil
}

// SelectDay decides what a tapped calendar day opens: the schedule view
// when appointments exist for it, otherwise the creation flow seeded with
// the date.
func (s *appointmentService) SelectDay(ctx context.Context, date string) (*dto.DaySelectionResponse, *errors.AppError) {
	if appErr := validateSlotFormat(date, ""); appErr != nil {
		return nil, appErr
	}
	appointments := dto.ToAppointmentResponses(s.store.ListByDate(date))
	decision := entity.DayShowCreate
	if len(appointments) > 0 {
		decision = entity.DayShowSchedule
	}
	return &dto.DaySelectionResponse{
		Date:         date,
		Decision:     decision,
		Appointments: appointments,
	}, nil
}

// ListUnscheduledRequests returns pending requests that have no slot and no
// assignee yet, in creation order.
func (s *appointmentService) ListUnscheduledRequests(ctx context.Context) ([]dto.AppointmentResponse, *errors.AppError) {
	var out []dto.AppointmentResponse
	for _, a := range s.store.List() {
		if a.Status == entity.StatusRequested && a.Date == "" && a.Time == "" && a.AssignedTo == "" {
			out = append(out, *dto.ToAppointmentResponse(a))
		}
	}
	return out, nil
}

// validateSlotFormat checks the display formats: dates are "2006-01-02",
// times are "3:04 PM". Empty values pass, presence rules are the caller's.
func validateSlotFormat(date, timeSlot string) *errors.AppError {
	if date != "" {
		if _, err := time.Parse(constants.DateLayout, date); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", err)
		}
	}
	if timeSlot != "" {
		if _, err := time.Parse(constants.TimeLayout, timeSlot); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Invalid time, expected a value like 10:00 AM", err)
		}
	}
	return nil
}
