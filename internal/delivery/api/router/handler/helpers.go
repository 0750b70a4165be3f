// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"strconv"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func currentSession(c echo.Context) (*entity.Session, error) {
	sess, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithDetails("session middleware not installed"))
	}

	return sess, nil
}

// bind decodes and validates the request body. A nil error with handled=true
// means a response was already written.
func bind(c echo.Context, req any, what string) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, "Invalid "+what+" input")
	}
	if err := c.Validate(req); err != nil {
		return true, err
	}

	return false, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return id, nil
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return n, nil
}

func boolQuery(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return &b, nil
}
