package api

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/costtracker/internal/models"
)

// toConnectError maps a domain error kind onto a connect status code.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInsufficientData):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, models.ErrDataUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
