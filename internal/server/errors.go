package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/talent-search/internal/types"
)

// HTTPStatus maps an engine error to its HTTP status code. Timeouts get
// their own status so callers know to retry with narrower filters.
func HTTPStatus(err error) int {
	var validation *types.ValidationError
	var notFound *types.NotFoundError
	var timeout *types.TimeoutError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
