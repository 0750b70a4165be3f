package entity

import "time"

// ToastType is the visual severity of a notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// IsValid checks if the ToastType is a valid value.
func (t ToastType) IsValid() bool {
	switch t {
	case ToastSuccess, ToastError, ToastWarning, ToastInfo:
		return true
	default:
		return false
	}
}

// ToastPosition is the screen corner or edge a notification is rendered at.
type ToastPosition string

const (
	ToastTopRight     ToastPosition = "top-right"
	ToastTopLeft      ToastPosition = "top-left"
	ToastBottomRight  ToastPosition = "bottom-right"
	ToastBottomLeft   ToastPosition = "bottom-left"
	ToastTopCenter    ToastPosition = "top-center"
	ToastBottomCenter ToastPosition = "bottom-center"
)

// IsValid checks if the ToastPosition is a valid value.
func (p ToastPosition) IsValid() bool {
	switch p {
	case ToastTopRight, ToastTopLeft, ToastBottomRight, ToastBottomLeft, ToastTopCenter, ToastBottomCenter:
		return true
	default:
		return false
	}
}

// DefaultToastDuration applies when a toast is shown without a duration.
const DefaultToastDuration = 3000 * time.Millisecond

// Toast is a transient notification queued for one browser session.
type Toast struct {
	ID         int           `json:"id"`
	Message    string        `json:"message"`
	Type       ToastType     `json:"type"`
	DurationMS int64         `json:"duration"`
	Position   ToastPosition `json:"position"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Duration returns the display duration.
func (t Toast) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// Expired reports whether the toast display time has elapsed.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(t.Duration()))
}
