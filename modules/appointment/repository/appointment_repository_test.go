package repository_test

import (
	"testing"

	"vetcare-api/modules/appointment/entity"
	"vetcare-api/modules/appointment/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(id, date, timeSlot string, status entity.Status) *entity.Appointment {
	return &entity.Appointment{
		ID:        id,
		AnimalIDs: []string{"1-1"},
		Date:      date,
		Time:      timeSlot,
		Status:    status,
		Procedure: "Checkup",
	}
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	r := repository.NewAppointmentRepository()
	r.Insert(appt("a", "2026-09-01", "9:00 AM", entity.StatusConfirmed))
	r.Insert(appt("b", "2026-09-01", "10:00 AM", entity.StatusConfirmed))
	r.Insert(appt("c", "2026-09-01", "11:00 AM", entity.StatusConfirmed))

	require.True(t, r.Remove("b"))

	var ids []string
	for _, a := range r.List() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestReadsAreSnapshots(t *testing.T) {
	r := repository.NewAppointmentRepository()
	r.Insert(appt("a", "2026-09-01", "9:00 AM", entity.StatusConfirmed))

	got := r.GetByID("a")
	got.Status = entity.StatusCompleted
	got.AnimalIDs[0] = "mutated"

	fresh := r.GetByID("a")
	assert.Equal(t, entity.StatusConfirmed, fresh.Status)
	assert.Equal(t, "1-1", fresh.AnimalIDs[0])
}

func TestHasDateTime(t *testing.T) {
	r := repository.NewAppointmentRepository()
	r.Insert(appt("a", "2026-09-01", "9:00 AM", entity.StatusConfirmed))
	r.Insert(appt("b", "", "", entity.StatusRequested))

	assert.True(t, r.HasDateTime("2026-09-01", "9:00 AM", ""))
	assert.False(t, r.HasDateTime("2026-09-01", "9:00 AM", "a"), "the excluded id must not count")
	assert.False(t, r.HasDateTime("2026-09-01", "10:00 AM", ""))
}

func TestReplaceAndRemoveUnknown(t *testing.T) {
	r := repository.NewAppointmentRepository()

	assert.False(t, r.Replace(appt("ghost", "", "", entity.StatusRequested)))
	assert.False(t, r.Remove("ghost"))
}

func TestListByDate(t *testing.T) {
	r := repository.NewAppointmentRepository()
	r.Insert(appt("a", "2026-09-01", "9:00 AM", entity.StatusConfirmed))
	r.Insert(appt("b", "2026-09-02", "9:00 AM", entity.StatusConfirmed))
	r.Insert(appt("c", "2026-09-01", "1:00 PM", entity.StatusRequested))

	got := r.ListByDate("2026-09-01")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestSeedSkipsDuplicates(t *testing.T) {
	r := repository.NewAppointmentRepository()
	r.Seed([]*entity.Appointment{
		appt("a", "2026-09-01", "9:00 AM", entity.StatusConfirmed),
		appt("a", "2026-09-02", "9:00 AM", entity.StatusConfirmed),
	})

	assert.Len(t, r.List(), 1)
	assert.Equal(t, "2026-09-01", r.GetByID("a").Date)
}
