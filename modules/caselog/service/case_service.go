package service

import (
	"context"
	"time"

	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/caselog/dto"
	"vetcare-api/modules/caselog/entity"
	"vetcare-api/modules/caselog/repository"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   string
	Role authentity.UserRole
}

// AnimalCatalog validates that referenced animals exist.
type AnimalCatalog interface {
	AnimalExists(ctx context.Context, id string) (bool, error)
}

// Notifier alerts the approving vets about a new urgent case.
type Notifier interface {
	UrgentCaseReported(ctx context.Context, c *entity.Case)
}

type CaseServiceInterface interface {
	ReportUrgent(ctx context.Context, actor Actor, req *dto.ReportCaseRequest) (*dto.CaseResponse, *errors.AppError)
	Review(ctx context.Context, actor Actor, caseID string, approve bool) (*dto.CaseResponse, *errors.AppError)
	Resolve(ctx context.Context, actor Actor, caseID string) (*dto.CaseResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.CaseResponse, *errors.AppError)
	ListUrgent(ctx context.Context) ([]dto.CaseResponse, *errors.AppError)
}

type caseService struct {
	repo     repository.CaseRepositoryInterface
	animals  AnimalCatalog
	notifier Notifier
}

func NewCaseService(repo repository.CaseRepositoryInterface, animals AnimalCatalog, notifier Notifier) CaseServiceInterface {
	return &caseService{
		repo:     repo,
		animals:  animals,
		notifier: notifier,
	}
}

// ReportUrgent files a new case. Any role may report; review of the report
// is reserved for approving roles.
func (s *caseService) ReportUrgent(ctx context.Context, actor Actor, req *dto.ReportCaseRequest) (*dto.CaseResponse, *errors.AppError) {
	logger.Info("CaseService:ReportUrgent:Start", "animal_id", req.AnimalID, "severity", req.Severity, "reported_by", actor.ID)

	severity := entity.Severity(req.Severity)
	if !severity.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown severity: "+req.Severity, nil)
	}

	exists, err := s.animals.AnimalExists(ctx, req.AnimalID)
	if err != nil {
		logger.Error("CaseService:ReportUrgent:AnimalExists:Error", "error", err, "animal_id", req.AnimalID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up animal", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown animal: "+req.AnimalID, nil)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate case id", err)
	}

	c := &entity.Case{
		ID:             id,
		AnimalID:       req.AnimalID,
		Severity:       severity,
		AssignedVets:   append([]string(nil), req.AssignedVets...),
		Notes:          req.Notes,
		Status:         entity.CaseActive,
		ApprovalStatus: entity.ApprovalPending,
		ReportedBy:     actor.ID,
		CreatedAt:      time.Now().UTC(),
	}
	s.repo.Insert(c)
	s.notifier.UrgentCaseReported(ctx, c)

	logger.Info("CaseService:ReportUrgent:Success", "case_id", c.ID)
	return dto.ToCaseResponse(c), nil
}

// Review approves or rejects a pending report. Rejection also closes the
// case.
func (s *caseService) Review(ctx context.Context, actor Actor, caseID string, approve bool) (*dto.CaseResponse, *errors.AppError) {
	if !actor.Role.CanApprove() {
		return nil, errors.NewAppError(errors.ErrForbidden, "Your role cannot review cases", nil)
	}

	c := s.repo.GetByID(caseID)
	if c == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Case not found", nil)
	}
	if c.ApprovalStatus != entity.ApprovalPending {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"Case has already been reviewed, approval status is "+string(c.ApprovalStatus), nil)
	}

	if approve {
		c.ApprovalStatus = entity.ApprovalApproved
	} else {
		c.ApprovalStatus = entity.ApprovalRejected
		c.Status = entity.CaseResolved
	}
	s.repo.Replace(c)

	logger.Info("CaseService:Review:Success", "case_id", caseID, "approval_status", c.ApprovalStatus)
	return dto.ToCaseResponse(c), nil
}

// Resolve closes an approved active case.
func (s *caseService) Resolve(ctx context.Context, actor Actor, caseID string) (*dto.CaseResponse, *errors.AppError) {
	if !actor.Role.CanApprove() {
		return nil, errors.NewAppError(errors.ErrForbidden, "Your role cannot resolve cases", nil)
	}

	c := s.repo.GetByID(caseID)
	if c == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Case not found", nil)
	}
	if c.Status != entity.CaseActive {
		return nil, errors.NewAppError(errors.ErrInvalidTransition, "Case is not active", nil)
	}

	c.Status = entity.CaseResolved
	s.repo.Replace(c)

	logger.Info("CaseService:Resolve:Success", "case_id", caseID)
	return dto.ToCaseResponse(c), nil
}

func (s *caseService) List(ctx context.Context) ([]dto.CaseResponse, *errors.AppError) {
	return dto.ToCaseResponses(s.repo.List()), nil
}

func (s *caseService) ListUrgent(ctx context.Context) ([]dto.CaseResponse, *errors.AppError) {
	return dto.ToCaseResponses(s.repo.ListUrgent()), nil
}
