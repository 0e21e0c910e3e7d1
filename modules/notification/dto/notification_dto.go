package dto

import (
	"time"

	"vetcare-api/modules/notification/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func ToNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
