package impl

import (
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

type toastService struct {
	now func() time.Time
}

// NewToastService creates a new toast service instance
func NewToastService() usecase.ToastUsecase {
	return &toastService{now: time.Now}
}

// Show queues a toast on the session. Unknown types fall back to info and
// unknown positions to top-right.
func (s *toastService) Show(sess *entity.Session, input *usecase.ToastInput) entity.Toast {
	sess.LastToastID++

	toast := entity.Toast{
		ID:         sess.LastToastID,
		Message:    strings.TrimSpace(input.Message),
		Type:       input.Type,
		DurationMS: input.DurationMS,
		Position:   input.Position,
		CreatedAt:  s.now().UTC(),
	}
	if !toast.Type.IsValid() {
		toast.Type = entity.ToastInfo
	}
	if toast.DurationMS <= 0 {
		toast.DurationMS = entity.DefaultToastDuration.Milliseconds()
	}
	if !toast.Position.IsValid() {
		toast.Position = entity.ToastTopRight
	}

	sess.Toasts = append(sess.Toasts, toast)

	return toast
}

// List drops expired toasts and returns the rest, oldest first.
func (s *toastService) List(sess *entity.Session) []entity.Toast {
	now := s.now()
	live := sess.Toasts[:0]
	for _, toast := range sess.Toasts {
		if !toast.Expired(now) {
			live = append(live, toast)
		}
	}
	sess.Toasts = live

	out := make([]entity.Toast, len(live))
	copy(out, live)

	return out
}

func (s *toastService) Remove(sess *entity.Session, id int) bool {
	for i, toast := range sess.Toasts {
		if toast.ID == id {
			sess.Toasts = append(sess.Toasts[:i], sess.Toasts[i+1:]...)

			return true
		}
	}

	return false
}
