package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"vetcare-api/core/constants"
	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	"vetcare-api/modules/healthrecord/dto"
	"vetcare-api/modules/healthrecord/entity"
	"vetcare-api/modules/healthrecord/repository"

	"github.com/gosimple/slug"
)

// AnimalCatalog validates that referenced animals exist.
type AnimalCatalog interface {
	AnimalExists(ctx context.Context, id string) (bool, error)
}

// Presigner issues signed upload URLs. Satisfied by storage.Uploader.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
}

type HealthRecordServiceInterface interface {
	Create(ctx context.Context, actorID string, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, *errors.AppError)
	ListByAnimal(ctx context.Context, animalID string) ([]dto.HealthRecordResponse, *errors.AppError)
	UpdateStatus(ctx context.Context, recordID string, req *dto.UpdateRecordStatusRequest) (*dto.HealthRecordResponse, *errors.AppError)
	PresignImageUpload(ctx context.Context, recordID string, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, *errors.AppError)
	AttachImage(ctx context.Context, recordID, key string) (*dto.HealthRecordResponse, *errors.AppError)
}

type healthRecordService struct {
	repo      repository.HealthRecordRepositoryInterface
	animals   AnimalCatalog
	presigner Presigner
}

func NewHealthRecordService(repo repository.HealthRecordRepositoryInterface, animals AnimalCatalog, presigner Presigner) HealthRecordServiceInterface {
	return &healthRecordService{
		repo:      repo,
		animals:   animals,
		presigner: presigner,
	}
}

func (s *healthRecordService) Create(ctx context.Context, actorID string, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, *errors.AppError) {
	logger.Info("HealthRecordService:Create:Start", "animal_id", req.AnimalID, "type", req.Type)

	recordType := entity.RecordType(req.Type)
	if !recordType.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown record type: "+req.Type, nil)
	}
	if req.Date == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date is required", nil)
	}
	if _, err := time.Parse(constants.DateLayout, req.Date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", err)
	}

	exists, err := s.animals.AnimalExists(ctx, req.AnimalID)
	if err != nil {
		logger.Error("HealthRecordService:Create:AnimalExists:Error", "error", err, "animal_id", req.AnimalID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up animal", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown animal: "+req.AnimalID, nil)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate record id", err)
	}

	record := &entity.HealthRecord{
		ID:          id,
		AnimalID:    req.AnimalID,
		Date:        req.Date,
		Type:        recordType,
		Notes:       req.Notes,
		Vitals:      req.Vitals,
		TreatedBy:   actorID,
		Medications: append([]string(nil), req.Medications...),
		Status:      entity.RecordPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.repo.Insert(record)

	logger.Info("HealthRecordService:Create:Success", "record_id", record.ID)
	return dto.ToHealthRecordResponse(record), nil
}

func (s *healthRecordService) ListByAnimal(ctx context.Context, animalID string) ([]dto.HealthRecordResponse, *errors.AppError) {
	exists, err := s.animals.AnimalExists(ctx, animalID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up animal", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrNotFound, "Animal not found", nil)
	}
	return dto.ToHealthRecordResponses(s.repo.ListByAnimal(animalID)), nil
}

func (s *healthRecordService) UpdateStatus(ctx context.Context, recordID string, req *dto.UpdateRecordStatusRequest) (*dto.HealthRecordResponse, *errors.AppError) {
	status := entity.RecordStatus(req.Status)
	if !status.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown record status: "+req.Status, nil)
	}

	record := s.repo.GetByID(recordID)
	if record == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Health record not found", nil)
	}

	record.Status = status
	s.repo.Replace(record)

	logger.Info("HealthRecordService:UpdateStatus:Success", "record_id", recordID, "status", status)
	return dto.ToHealthRecordResponse(record), nil
}

// PresignImageUpload hands out a signed PUT URL for a gallery image. The
// client uploads directly to the bucket and then attaches the returned key.
func (s *healthRecordService) PresignImageUpload(ctx context.Context, recordID string, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, *errors.AppError) {
	if req.FileName == "" || req.ContentType == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "File name and content type are required", nil)
	}
	if !s.repo.Exists(recordID) {
		return nil, errors.NewAppError(errors.ErrNotFound, "Health record not found", nil)
	}

	ext := path.Ext(req.FileName)
	base := slug.Make(req.FileName[:len(req.FileName)-len(ext)])
	key := fmt.Sprintf("health-records/%s/%s%s", recordID, base, ext)

	url, err := s.presigner.PresignPut(ctx, key, req.ContentType)
	if err != nil {
		logger.Error("HealthRecordService:PresignImageUpload:Error", "error", err, "record_id", recordID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to presign upload", err)
	}

	return &dto.PresignUploadResponse{UploadURL: url, Key: key}, nil
}

// AttachImage appends an uploaded image key to the record's gallery.
func (s *healthRecordService) AttachImage(ctx context.Context, recordID, key string) (*dto.HealthRecordResponse, *errors.AppError) {
	if key == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Image key is required", nil)
	}

	record := s.repo.GetByID(recordID)
	if record == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Health record not found", nil)
	}

	record.Images = append(record.Images, key)
	s.repo.Replace(record)
	return dto.ToHealthRecordResponse(record), nil
}
