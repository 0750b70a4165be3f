// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/schema"

	"github.com/pkg/errors"
)

// authorize checks the schema rules for the session's role. Guests denied an
// operation get ErrUnauthenticated so the client can prompt a login.
func authorize(sess *entity.Session, model schema.Model, op schema.Operation, isOwner bool) error {
	principal := schema.Principal{Role: sess.Role(), IsOwner: isOwner}
	if schema.Allows(model, principal, op) {
		return nil
	}
	if principal.Role == entity.RoleGuest {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden.WithDetails(string(op) + " " + string(model))
}

// userMessage is the human-readable text stored as the session's last error.
func userMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

// fail records err on the session and wraps it with the operation context.
func fail(sess *entity.Session, err error, op string) error {
	sess.LastError = userMessage(err)

	return errors.Wrap(err, op)
}

// optional returns nil for blank strings.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// requireAdmin rejects every non-admin session.
func requireAdmin(sess *entity.Session) error {
	switch sess.Role() {
	case entity.RoleAdmin:
		return nil
	case entity.RoleGuest:
		return domainerrors.ErrUnauthenticated
	default:
		return domainerrors.ErrForbidden.WithDetails("admin group required")
	}
}
