// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger records handler failures with the request path and method
// attached, so log lines can be traced back to a page.
type ErrorLogger struct {
	logger *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{logger: logger}
}

// Log records an error for the given request.
func (e *ErrorLogger) Log(r *http.Request, msg string, err error) {
	e.LogWithFields(r, msg, err)
}

// LogWithFields records an error with extra structured fields.
func (e *ErrorLogger) LogWithFields(r *http.Request, msg string, err error, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+3)
	all = append(all,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	all = append(all, fields...)
	e.logger.Error(msg, all...)
}

// Handler renders the error pages. Both pages are marked noindex; a crawler
// that lands on a dead business slug should not keep the URL.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the 404 page. It also serves as the shared not-found
// callback for the directory, collection, guide and blog handlers.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Page Not Found", "")
	vm.Noindex = true

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "errors/not_found", vm)
}

// InternalError renders the 500 page.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.NewBaseVM(r, "Server Error", "")
	vm.Noindex = true

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "errors/internal", vm)
}
