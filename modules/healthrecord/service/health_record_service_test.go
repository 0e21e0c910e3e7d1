package service_test

import (
	"context"
	"testing"

	"vetcare-api/core/errors"
	"vetcare-api/modules/healthrecord/dto"
	"vetcare-api/modules/healthrecord/entity"
	"vetcare-api/modules/healthrecord/repository"
	"vetcare-api/modules/healthrecord/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnimals struct{}

func (fakeAnimals) AnimalExists(ctx context.Context, id string) (bool, error) {
	return id == "1-1", nil
}

type fakePresigner struct {
	keys []string
}

func (f *fakePresigner) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://bucket.example.com/" + key + "?signed", nil
}

func newRecordFixture() (service.HealthRecordServiceInterface, *repository.HealthRecordRepository, *fakePresigner) {
	repo := repository.NewHealthRecordRepository()
	presigner := &fakePresigner{}
	return service.NewHealthRecordService(repo, fakeAnimals{}, presigner), repo, presigner
}

func TestRecordCreate(t *testing.T) {
	svc, _, _ := newRecordFixture()

	resp, appErr := svc.Create(context.Background(), "1", &dto.CreateHealthRecordRequest{
		AnimalID: "1-1", Date: "2026-09-01", Type: "checkup",
		Vitals: entity.Vitals{Temperature: "39.1C"},
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.RecordPending), resp.Status)
	assert.Equal(t, "1", resp.TreatedBy)
}

func TestRecordCreateValidation(t *testing.T) {
	svc, _, _ := newRecordFixture()

	tests := []struct {
		name string
		req  dto.CreateHealthRecordRequest
	}{
		{"bad type", dto.CreateHealthRecordRequest{AnimalID: "1-1", Date: "2026-09-01", Type: "surgery"}},
		{"no date", dto.CreateHealthRecordRequest{AnimalID: "1-1", Type: "checkup"}},
		{"bad date", dto.CreateHealthRecordRequest{AnimalID: "1-1", Date: "01.09.2026", Type: "checkup"}},
		{"unknown animal", dto.CreateHealthRecordRequest{AnimalID: "9-9", Date: "2026-09-01", Type: "checkup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), "1", &tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestRecordStatusUpdate(t *testing.T) {
	svc, _, _ := newRecordFixture()
	created, _ := svc.Create(context.Background(), "1", &dto.CreateHealthRecordRequest{
		AnimalID: "1-1", Date: "2026-09-01", Type: "treatment",
	})

	resp, appErr := svc.UpdateStatus(context.Background(), created.ID, &dto.UpdateRecordStatusRequest{Status: "in-progress"})
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.RecordInProgress), resp.Status)

	_, appErr = svc.UpdateStatus(context.Background(), created.ID, &dto.UpdateRecordStatusRequest{Status: "archived"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestPresignAndAttachImage(t *testing.T) {
	svc, _, presigner := newRecordFixture()
	created, _ := svc.Create(context.Background(), "1", &dto.CreateHealthRecordRequest{
		AnimalID: "1-1", Date: "2026-09-01", Type: "checkup",
	})

	resp, appErr := svc.PresignImageUpload(context.Background(), created.ID, &dto.PresignUploadRequest{
		FileName: "Wing X-Ray.png", ContentType: "image/png",
	})

	require.Nil(t, appErr)
	assert.Equal(t, "health-records/"+created.ID+"/wing-x-ray.png", resp.Key)
	assert.Contains(t, resp.UploadURL, "?signed")
	assert.Equal(t, []string{resp.Key}, presigner.keys)

	attached, appErr := svc.AttachImage(context.Background(), created.ID, resp.Key)
	require.Nil(t, appErr)
	assert.Equal(t, []string{resp.Key}, attached.Images)
}

func TestPresignUnknownRecord(t *testing.T) {
	svc, _, _ := newRecordFixture()

	_, appErr := svc.PresignImageUpload(context.Background(), "ghost", &dto.PresignUploadRequest{
		FileName: "a.png", ContentType: "image/png",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
