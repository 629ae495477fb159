package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/report"
)

var (
	errUnknownChild = errors.New("unknown child")
	errBadRequest   = errors.New("bad request")
)

// APIError is the error body returned by every endpoint.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps APIError.
type ErrorEnvelope struct {
	Error     APIError `json:"error"`
	RequestID string   `json:"request_id,omitempty"`
}

// RespondError writes err with the status its kind maps to.
func RespondError(c *gin.Context, err error) {
	status, code := classify(err)
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error:     APIError{Message: msg, Code: code},
		RequestID: c.GetString(requestIDKey),
	})
}

// RespondOK writes payload as JSON with status 200.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondFile writes data as a download named name.
func RespondFile(c *gin.Context, contentType, name string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name)))
	c.Data(http.StatusOK, contentType, data)
}

func classify(err error) (int, string) {
	var (
		mGen *mission.GenerationError
		rGen *report.GenerationError
		sErr *history.StorageError
		rErr *render.RenderError
	)
	switch {
	case errors.Is(err, mission.ErrInvalidLevel),
		errors.Is(err, mission.ErrUnknownTheme),
		errors.Is(err, history.ErrInvalidChild),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, errUnknownChild), errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.As(err, &mGen), errors.As(err, &rGen):
		return http.StatusBadGateway, "generation_failed"
	case errors.As(err, &sErr):
		return http.StatusInternalServerError, "storage_error"
	case errors.As(err, &rErr):
		return http.StatusInternalServerError, "render_error"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
