package service_test

import (
	"context"
	"testing"

	"vetcare-api/core/errors"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/caselog/dto"
	"vetcare-api/modules/caselog/entity"
	"vetcare-api/modules/caselog/repository"
	"vetcare-api/modules/caselog/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnimals struct{}

func (fakeAnimals) AnimalExists(ctx context.Context, id string) (bool, error) {
	return id == "4-2", nil
}

type fakeCaseNotifier struct {
	reported []string
}

func (f *fakeCaseNotifier) UrgentCaseReported(ctx context.Context, c *entity.Case) {
	f.reported = append(f.reported, c.ID)
}

var (
	caseHeadVet   = service.Actor{ID: "1", Role: authentity.RoleHeadVet}
	caseCaretaker = service.Actor{ID: "5", Role: authentity.RoleCaretakerC}
)

func newCaseFixture() (service.CaseServiceInterface, *repository.CaseRepository, *fakeCaseNotifier) {
	repo := repository.NewCaseRepository()
	notifier := &fakeCaseNotifier{}
	return service.NewCaseService(repo, fakeAnimals{}, notifier), repo, notifier
}

func TestReportUrgent(t *testing.T) {
	svc, _, notifier := newCaseFixture()

	resp, appErr := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
		AnimalID: "4-2", Severity: "high", Notes: "Refusing food",
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.CaseActive), resp.Status)
	assert.Equal(t, string(entity.ApprovalPending), resp.ApprovalStatus)
	assert.Equal(t, "5", resp.ReportedBy)
	assert.Len(t, notifier.reported, 1)
}

func TestReportUrgentValidation(t *testing.T) {
	svc, _, _ := newCaseFixture()

	_, appErr := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
		AnimalID: "4-2", Severity: "catastrophic",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
		AnimalID: "9-9", Severity: "high",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestReviewCase(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		svc, _, _ := newCaseFixture()
		created, _ := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
			AnimalID: "4-2", Severity: "high",
		})

		resp, appErr := svc.Review(context.Background(), caseHeadVet, created.ID, true)

		require.Nil(t, appErr)
		assert.Equal(t, string(entity.ApprovalApproved), resp.ApprovalStatus)
		assert.Equal(t, string(entity.CaseActive), resp.Status)
	})

	t.Run("reject closes the case", func(t *testing.T) {
		svc, _, _ := newCaseFixture()
		created, _ := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
			AnimalID: "4-2", Severity: "high",
		})

		resp, appErr := svc.Review(context.Background(), caseHeadVet, created.ID, false)

		require.Nil(t, appErr)
		assert.Equal(t, string(entity.ApprovalRejected), resp.ApprovalStatus)
		assert.Equal(t, string(entity.CaseResolved), resp.Status)
	})

	t.Run("restricted role is forbidden", func(t *testing.T) {
		svc, _, _ := newCaseFixture()
		created, _ := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
			AnimalID: "4-2", Severity: "high",
		})

		_, appErr := svc.Review(context.Background(), caseCaretaker, created.ID, true)

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrForbidden, appErr.Code)
	})

	t.Run("double review is an invalid transition", func(t *testing.T) {
		svc, _, _ := newCaseFixture()
		created, _ := svc.ReportUrgent(context.Background(), caseCaretaker, &dto.ReportCaseRequest{
			AnimalID: "4-2", Severity: "high",
		})
		_, _ = svc.Review(context.Background(), caseHeadVet, created.ID, true)

		_, appErr := svc.Review(context.Background(), caseHeadVet, created.ID, true)

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidTransition, appErr.Code)
	})
}

func TestListUrgent(t *testing.T) {
	svc, repo, _ := newCaseFixture()
	repo.Seed([]*entity.Case{
		{ID: "c1", AnimalID: "4-2", Severity: entity.SeverityHigh, Status: entity.CaseActive, ApprovalStatus: entity.ApprovalApproved, ReportedBy: "5"},
		{ID: "c2", AnimalID: "4-2", Severity: entity.SeverityLow, Status: entity.CaseActive, ApprovalStatus: entity.ApprovalApproved, ReportedBy: "5"},
		{ID: "c3", AnimalID: "4-2", Severity: entity.SeverityCritical, Status: entity.CaseResolved, ApprovalStatus: entity.ApprovalApproved, ReportedBy: "5"},
	})

	got, appErr := svc.ListUrgent(context.Background())
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}
