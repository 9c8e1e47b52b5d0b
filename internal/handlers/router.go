package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// NewRouter registers the API and Slack routes.
func NewRouter(api *APIHandler, slackHandler *SlackHandler, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", api.HandleHealth)

	mux.HandleFunc("GET /api/templates", api.HandleListTemplates)
	mux.HandleFunc("POST /api/templates/reload", api.HandleReloadTemplates)
	mux.HandleFunc("POST /api/templates/import", api.HandleImportTemplates)
	mux.HandleFunc("GET /api/templates/{name}", api.HandleGetTemplate)
	mux.HandleFunc("PUT /api/templates/{name}", api.HandleEditTemplate)
	mux.HandleFunc("DELETE /api/templates/{name}/edit", api.HandleResetTemplate)

	mux.HandleFunc("GET /api/calendar", api.HandleCalendar)
	mux.HandleFunc("GET /api/planning", api.HandlePlanning)
	mux.HandleFunc("GET /api/planning/export", api.HandleExport)
	mux.HandleFunc("GET /api/planning/subtasks", api.HandleListSubTasks)
	mux.HandleFunc("POST /api/planning/subtasks", api.HandleAddSubTask)
	mux.HandleFunc("DELETE /api/planning/subtasks/{id}", api.HandleRemoveSubTask)

	mux.HandleFunc("GET /api/absences", api.HandleAbsences)
	mux.HandleFunc("GET /api/hours", api.HandleHours)
	mux.HandleFunc("GET /api/visits", api.HandleVisits)
	mux.HandleFunc("GET /api/diagnostics", api.HandleDiagnostics)

	if slackHandler != nil {
		mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	}

	return logRequests(mux, log.Named("http"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
