package dto

import (
	"time"

	"vetcare-api/modules/caselog/entity"
)

type ReportCaseRequest struct {
	AnimalID     string   `json:"animal_id"`
	Severity     string   `json:"severity"`
	AssignedVets []string `json:"assigned_vets"`
	Notes        string   `json:"notes"`
}

type ReviewCaseRequest struct {
	Approve bool `json:"approve"`
}

type CaseResponse struct {
	ID             string    `json:"id"`
	AnimalID       string    `json:"animal_id"`
	Severity       string    `json:"severity"`
	AssignedVets   []string  `json:"assigned_vets,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	ApprovalStatus string    `json:"approval_status"`
	ReportedBy     string    `json:"reported_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToCaseResponse(c *entity.Case) *CaseResponse {
	return &CaseResponse{
		ID:             c.ID,
		AnimalID:       c.AnimalID,
		Severity:       string(c.Severity),
		AssignedVets:   c.AssignedVets,
		Notes:          c.Notes,
		Status:         string(c.Status),
		ApprovalStatus: string(c.ApprovalStatus),
		ReportedBy:     c.ReportedBy,
		CreatedAt:      c.CreatedAt,
	}
}

func ToCaseResponses(cases []*entity.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, *ToCaseResponse(c))
	}
	return out
}
