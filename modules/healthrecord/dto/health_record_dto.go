package dto

import (
	"time"

	"vetcare-api/modules/healthrecord/entity"
)

type CreateHealthRecordRequest struct {
	AnimalID    string        `json:"animal_id"`
	Date        string        `json:"date"`
	Type        string        `json:"type"`
	Notes       string        `json:"notes"`
	Vitals      entity.Vitals `json:"vitals"`
	Medications []string      `json:"medications"`
}

type UpdateRecordStatusRequest struct {
	Status string `json:"status"`
}

// PresignUploadRequest asks for a gallery upload slot for a record image.
type PresignUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// PresignUploadResponse carries the signed PUT URL and the key the image
// will live under once uploaded.
type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

type HealthRecordResponse struct {
	ID          string        `json:"id"`
	AnimalID    string        `json:"animal_id"`
	Date        string        `json:"date"`
	Type        string        `json:"type"`
	Notes       string        `json:"notes,omitempty"`
	Vitals      entity.Vitals `json:"vitals"`
	TreatedBy   string        `json:"treated_by,omitempty"`
	Images      []string      `json:"images,omitempty"`
	Medications []string      `json:"medications,omitempty"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func ToHealthRecordResponse(r *entity.HealthRecord) *HealthRecordResponse {
	return &HealthRecordResponse{
		ID:          r.ID,
		AnimalID:    r.AnimalID,
		Date:        r.Date,
		Type:        string(r.Type),
		Notes:       r.Notes,
		Vitals:      r.Vitals,
		TreatedBy:   r.TreatedBy,
		Images:      r.Images,
		Medications: r.Medications,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func ToHealthRecordResponses(records []*entity.HealthRecord) []HealthRecordResponse {
	out := make([]HealthRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *ToHealthRecordResponse(r))
	}
	return out
}
