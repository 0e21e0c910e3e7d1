package entity

import (
	"time"
)

// Status is the closed set of appointment states.
type Status string

const (
	StatusRequested Status = "Requested"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Action is a resolution verb applied to an appointment.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionApprove, ActionReject, ActionCancel:
		return true
	}
	return false
}

// Outcome is the result of a permitted (status, action) pair: either a new
// status or removal from the active set.
type Outcome struct {
	Next   Status
	Remove bool
}

// transitions is the whole resolution state machine. Approving a request
// confirms it; rejecting a request or cancelling a confirmed appointment
// removes it. Everything else is an invalid transition.
var transitions = map[Status]map[Action]Outcome{
	StatusRequested: {
		ActionApprove: {Next: StatusConfirmed},
		ActionReject:  {Remove: true},
	},
	StatusConfirmed: {
		ActionCancel: {Remove: true},
	},
}

// ResolveTransition looks up the outcome for applying action to an
// appointment in the given status. ok is false when the pair is not allowed.
func ResolveTransition(status Status, action Action) (Outcome, bool) {
	out, ok := transitions[status][action]
	return out, ok
}

// Appointment is the scheduler's central entity. Date and Time are display
// formats ("2006-01-02" and "3:04 PM"); both empty means the appointment is
// an unscheduled request.
type Appointment struct {
	ID          string    `json:"id"`
	AnimalIDs   []string  `json:"animal_ids"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	Status      Status    `json:"status"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
	Procedure   string    `json:"procedure"`
	CreatedAt   time.Time `json:"created_at"`
}

// Scheduled reports whether the appointment has a concrete slot.
func (a *Appointment) Scheduled() bool {
	return a.Date != "" && a.Time != ""
}

// Clone returns a deep copy safe to hand to callers.
func (a *Appointment) Clone() *Appointment {
	cp := *a
	cp.AnimalIDs = make([]string, len(a.AnimalIDs))
	copy(cp.AnimalIDs, a.AnimalIDs)
	return &cp
}

// Calendar marker colors, keyed off status: confirmed slots render green,
// anything still pending renders orange.
const (
	MarkerColorConfirmed = "#4CAF50"
	MarkerColorPending   = "#FFA726"
)

// MarkerColor classifies a status for calendar highlighting.
func MarkerColor(s Status) string {
	if s == StatusConfirmed {
		return MarkerColorConfirmed
	}
	return MarkerColorPending
}

// DateDot is one calendar dot: one per distinct status present on a date.
type DateDot struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// DateMarker is the calendar-highlight payload for a single date.
type DateMarker struct {
	Marked bool      `json:"marked"`
	Dots   []DateDot `json:"dots"`
}

// DayDecision tells the presentation layer what to open for a selected day.
type DayDecision string

const (
	DayShowSchedule DayDecision = "show_schedule"
	DayShowCreate   DayDecision = "show_create"
)
