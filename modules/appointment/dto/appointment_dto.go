package dto

import (
	"time"

	"vetcare-api/modules/appointment/entity"
)

// CreateAppointmentRequest carries a new appointment. Date, Time and
// TargetVetID are conditional on the caller's role: approving roles schedule
// themselves directly, restricted roles file a request for a target vet.
type CreateAppointmentRequest struct {
	AnimalIDs   []string `json:"animal_ids"`
	Procedure   string   `json:"procedure"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	TargetVetID string   `json:"target_vet_id,omitempty"`
}

// ResolveAppointmentRequest applies a resolution action.
type ResolveAppointmentRequest struct {
	Action string `json:"action"`
}

// ConfirmScheduleRequest pins a requested appointment to a concrete slot.
type ConfirmScheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AppointmentResponse struct {
	ID          string    `json:"id"`
	AnimalIDs   []string  `json:"animal_ids"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
	Procedure   string    `json:"procedure"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolveAppointmentResponse reports the transition outcome. Appointment is
// nil when the action removed the record.
type ResolveAppointmentResponse struct {
	Removed     bool                 `json:"removed"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

// MarkedDatesResponse maps "2006-01-02" dates to their calendar markers.
type MarkedDatesResponse struct {
	Dates map[string]entity.DateMarker `json:"dates"`
}

// DaySelectionResponse is the dispatch result for a tapped calendar day.
type DaySelectionResponse struct {
	Date         string                `json:"date"`
	Decision     entity.DayDecision    `json:"decision"`
	Appointments []AppointmentResponse `json:"appointments"`
}

func ToAppointmentResponse(a *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		AnimalIDs:   a.AnimalIDs,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
		AssignedTo:  a.AssignedTo,
		RequestedBy: a.RequestedBy,
		Procedure:   a.Procedure,
		CreatedAt:   a.CreatedAt,
	}
}

func ToAppointmentResponses(appointments []*entity.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *ToAppointmentResponse(a))
	}
	return out
}
