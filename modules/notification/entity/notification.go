package entity

import "time"

// NotificationType classifies the event behind a notification.
type NotificationType string

const (
	TypeAppointmentRequested NotificationType = "appointment_requested"
	TypeAppointmentConfirmed NotificationType = "appointment_confirmed"
	TypeAppointmentReminder  NotificationType = "appointment_reminder"
	TypeUrgentCase           NotificationType = "urgent_case"
	TypeLowStock             NotificationType = "low_stock"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) Clone() *Notification {
	cp := *n
	return &cp
}
