package service_test

import (
	"context"
	"testing"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/params"
	"vetcare-api/core/queue"
	appointmententity "vetcare-api/modules/appointment/entity"
	authentity "vetcare-api/modules/auth/entity"
	authrepository "vetcare-api/modules/auth/repository"
	caselogentity "vetcare-api/modules/caselog/entity"
	"vetcare-api/modules/notification/repository"
	"vetcare-api/modules/notification/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduler struct {
	payloads []queue.ReminderPayload
	delays   []time.Duration
}

func (f *fakeScheduler) EnqueueAppointmentReminder(ctx context.Context, p queue.ReminderPayload, delay time.Duration) error {
	f.payloads = append(f.payloads, p)
	f.delays = append(f.delays, delay)
	return nil
}

func newNotificationFixture(t *testing.T) (*service.NotificationService, *repository.NotificationRepository, *fakeScheduler) {
	t.Helper()
	config.Set(&config.Config{
		Queue: config.QueueConfig{ReminderLeadMins: 60},
	})

	repo := repository.NewNotificationRepository()
	scheduler := &fakeScheduler{}
	users := authrepository.NewUserRepository([]authentity.User{
		{ID: "1", Role: authentity.RoleHeadVet},
		{ID: "6", Role: authentity.RoleAdmin},
		{ID: "3", Role: authentity.RoleCaretakerA},
	})
	return service.NewNotificationService(repo, scheduler, users), repo, scheduler
}

func TestAppointmentConfirmedNotifiesBothParties(t *testing.T) {
	svc, repo, scheduler := newNotificationFixture(t)

	future := time.Now().Add(48 * time.Hour)
	svc.AppointmentConfirmed(context.Background(), &appointmententity.Appointment{
		ID:          "a1",
		AnimalIDs:   []string{"1-1"},
		Date:        future.Format("2006-01-02"),
		Time:        "10:00 AM",
		Status:      appointmententity.StatusConfirmed,
		AssignedTo:  "1",
		RequestedBy: "2",
		Procedure:   "Checkup",
	})

	assert.Equal(t, 1, repo.CountUnread("1"))
	assert.Equal(t, 1, repo.CountUnread("2"))
	require.Len(t, scheduler.payloads, 1)
	assert.Equal(t, "a1", scheduler.payloads[0].AppointmentID)
	assert.Greater(t, scheduler.delays[0], time.Duration(0))
}

func TestPastSlotSkipsReminder(t *testing.T) {
	svc, _, scheduler := newNotificationFixture(t)

	svc.AppointmentConfirmed(context.Background(), &appointmententity.Appointment{
		ID: "a1", AnimalIDs: []string{"1-1"}, Date: "2020-01-01", Time: "10:00 AM",
		Status: appointmententity.StatusConfirmed, AssignedTo: "1", Procedure: "Checkup",
	})

	assert.Empty(t, scheduler.payloads)
}

func TestUrgentCaseFansOutToApprovers(t *testing.T) {
	svc, repo, _ := newNotificationFixture(t)

	svc.UrgentCaseReported(context.Background(), &caselogentity.Case{
		ID: "c1", AnimalID: "4-2", Severity: caselogentity.SeverityCritical,
	})

	assert.Equal(t, 1, repo.CountUnread("1"))
	assert.Equal(t, 1, repo.CountUnread("6"))
	assert.Equal(t, 0, repo.CountUnread("3"))
}

func TestListAndMarkRead(t *testing.T) {
	svc, _, _ := newNotificationFixture(t)
	ctx := context.Background()

	svc.Notify(ctx, "1", "test", "First", "one")
	svc.Notify(ctx, "1", "test", "Second", "two")

	page, appErr := svc.List(ctx, "1", params.QueryParams{Page: 1, Limit: 10})
	require.Nil(t, appErr)
	require.Len(t, page.Items, 2)
	// Newest first.
	assert.Equal(t, "Second", page.Items[0].Title)

	require.Nil(t, svc.MarkRead(ctx, "1", page.Items[0].ID))

	count, appErr := svc.CountUnread(ctx, "1")
	require.Nil(t, appErr)
	assert.Equal(t, 1, count.Count)

	// Someone else's notification reads as absent.
	appErr = svc.MarkRead(ctx, "2", page.Items[1].ID)
	require.NotNil(t, appErr)

	res, appErr := svc.MarkAllRead(ctx, "1")
	require.Nil(t, appErr)
	assert.Equal(t, 1, res.Updated)
}
