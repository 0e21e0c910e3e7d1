package entity

import "time"

// RecordType classifies a health record entry.
type RecordType string

const (
	RecordCheckup   RecordType = "checkup"
	RecordTreatment RecordType = "treatment"
	RecordEmergency RecordType = "emergency"
)

func (t RecordType) IsValid() bool {
	switch t {
	case RecordCheckup, RecordTreatment, RecordEmergency:
		return true
	}
	return false
}

// RecordStatus tracks the care workflow of a record.
type RecordStatus string

const (
	RecordPending    RecordStatus = "pending"
	RecordInProgress RecordStatus = "in-progress"
	RecordCompleted  RecordStatus = "completed"
)

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordPending, RecordInProgress, RecordCompleted:
		return true
	}
	return false
}

// Vitals is a free-form snapshot taken during an examination.
type Vitals struct {
	Temperature string `json:"temperature,omitempty"`
	HeartRate   string `json:"heart_rate,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Respiration string `json:"respiration,omitempty"`
}

type HealthRecord struct {
	ID          string       `json:"id"`
	AnimalID    string       `json:"animal_id"`
	Date        string       `json:"date"`
	Type        RecordType   `json:"type"`
	Notes       string       `json:"notes,omitempty"`
	Vitals      Vitals       `json:"vitals"`
	TreatedBy   string       `json:"treated_by,omitempty"`
	Images      []string     `json:"images,omitempty"`
	Medications []string     `json:"medications,omitempty"`
	Status      RecordStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (r *HealthRecord) Clone() *HealthRecord {
	cp := *r
	cp.Images = append([]string(nil), r.Images...)
	cp.Medications = append([]string(nil), r.Medications...)
	return &cp
}
