package entity

import "time"

// Severity grades how serious a case is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// CaseStatus tracks whether the case is still being worked.
type CaseStatus string

const (
	CaseActive   CaseStatus = "active"
	CaseResolved CaseStatus = "resolved"
)

// ApprovalStatus tracks the review of an urgent report.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Case struct {
	ID             string         `json:"id"`
	AnimalID       string         `json:"animal_id"`
	Severity       Severity       `json:"severity"`
	AssignedVets   []string       `json:"assigned_vets,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Status         CaseStatus     `json:"status"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	ReportedBy     string         `json:"reported_by"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (c *Case) Clone() *Case {
	cp := *c
	cp.AssignedVets = append([]string(nil), c.AssignedVets...)
	return &cp
}
