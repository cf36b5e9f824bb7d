package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/atinyakov/starwars-api/internal/errs"
	"github.com/atinyakov/starwars-api/internal/middleware"
	"github.com/atinyakov/starwars-api/internal/repository"
	"github.com/atinyakov/starwars-api/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// messageResponse is the body of successful mutations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the client error taxonomy. notFound is the
// message used when err is repository.ErrNotFound. Unclassified errors are
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, notFound string) {
	var httpErr *errs.HTTPError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, repository.ErrNotFound):
		httpErr = errs.NewNotFoundError(notFound)
	case errors.Is(err, repository.ErrConflict):
		httpErr = errs.NewConflictError("record already exists")
	case errors.Is(err, repository.ErrInvalidReference):
		httpErr = errs.NewBadRequestError("referenced record does not exist", nil)
	case errors.Is(err, repository.ErrConstraint):
		httpErr = errs.NewBadRequestError("request violates a data constraint", nil)
	default:
		httpErr = errs.NewInternalServerError()
	}

	if httpErr.Status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
	writeJSON(w, httpErr.Status, httpErr)
}

// decodeAndValidate decodes the JSON body into dst and runs its validate tags.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewBadRequestError("invalid request body", nil)
	}
	if httpErr := validation.Struct(dst); httpErr != nil {
		return httpErr
	}
	return nil
}

// idParam reads the numeric {id} URL parameter. Routes constrain it to
// digits, so a parse failure only happens on overflow.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, repository.ErrNotFound
	}
	return id, nil
}
