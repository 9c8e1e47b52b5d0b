package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/export"
	"go.uber.org/zap"
)

// maxUploadSize bounds the xlsx documents accepted by the import route.
const maxUploadSize = 10 << 20

type APIHandler struct {
	planning contract.PlanningService
	absences contract.AbsenceService
	hours    contract.HoursService
	visits   contract.VisitService
	log      *zap.Logger
	now      func() time.Time
}

func NewAPI(planning contract.PlanningService, absences contract.AbsenceService, hours contract.HoursService, visits contract.VisitService, log *zap.Logger) *APIHandler {
	return &APIHandler{
		planning: planning,
		absences: absences,
		hours:    hours,
		visits:   visits,
		log:      log.Named("api"),
		now:      time.Now,
	}
}

type templatesResponse struct {
	Templates []*entity.Template      `json:"templates"`
	Colors    map[string]entity.Color `json:"colors"`
}

type editTemplateRequest struct {
	Rows [][]string `json:"rows"`
}

type addSubTaskRequest struct {
	TaskID string `json:"task_id"`
	Text   string `json:"text"`
}

type diagnosticsResponse struct {
	FallbackCount int64 `json:"fallback_count"`
}

func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *APIHandler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templatesResponse{
		Templates: h.planning.Templates(),
		Colors:    h.planning.Colors(),
	})
}

func (h *APIHandler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.planning.Template(r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *APIHandler) HandleEditTemplate(w http.ResponseWriter, r *http.Request) {
	var req editTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, badRequest("invalid JSON body"))
		return
	}

	t, err := h.planning.EditTemplate(r.Context(), r.PathValue("name"), req.Rows)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *APIHandler) HandleResetTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.planning.ResetTemplate(r.Context(), r.PathValue("name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) HandleReloadTemplates(w http.ResponseWriter, r *http.Request) {
	if err := h.planning.LoadTemplates(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.HandleListTemplates(w, r)
}

func (h *APIHandler) HandleImportTemplates(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if err := h.planning.ImportWorkbook(r.Context(), bytes.NewReader(body)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.HandleListTemplates(w, r)
}

func (h *APIHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.now()

	year, err := intParam(q.Get("year"), now.Year())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	month, err := intParam(q.Get("month"), int(now.Month()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cm, err := h.planning.Calendar(r.Context(), q.Get("template"), year, time.Month(month))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cm)
}

func (h *APIHandler) HandlePlanning(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	p, err := h.planning.GeneratePlanning(r.Context(), r.URL.Query().Get("template"), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *APIHandler) HandleAddSubTask(w http.ResponseWriter, r *http.Request) {
	var req addSubTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, badRequest("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.TaskID) == "" {
		h.writeError(w, r, badRequest("task_id is required"))
		return
	}

	st, err := h.planning.AddSubTask(r.Context(), req.TaskID, req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

// HandleListSubTasks returns the sub-tasks of the task_id query values,
// grouped by task.
func (h *APIHandler) HandleListSubTasks(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["task_id"]
	if len(ids) == 0 {
		h.writeError(w, r, badRequest("at least one task_id is required"))
		return
	}

	subTasks, err := h.planning.ListSubTasks(r.Context(), ids)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subTasks)
}

func (h *APIHandler) HandleRemoveSubTask(w http.ResponseWriter, r *http.Request) {
	if err := h.planning.RemoveSubTask(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport renders the whole document before answering so that a
// failure still produces a JSON error instead of a truncated download.
func (h *APIHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = export.FormatXLSX
	}

	start, end, err := dateRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	name := q.Get("template")
	var buf bytes.Buffer
	if err := h.planning.ExportPlanning(r.Context(), &buf, format, name, start, end); err != nil {
		h.writeError(w, r, err)
		return
	}

	filename := export.FileName(&entity.Planning{Template: name, Start: start, End: end}, format)
	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *APIHandler) HandleAbsences(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	summary, err := h.absences.Summary(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *APIHandler) HandleHours(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	summary, err := h.hours.Summary(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *APIHandler) HandleVisits(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	summary, err := h.visits.Summary(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *APIHandler) HandleDiagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, diagnosticsResponse{FallbackCount: h.planning.FallbackCount()})
}

func intParam(value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, badRequest(fmt.Sprintf("invalid number %q", value))
	}
	return n, nil
}

// dateRange reads the start and end query parameters, both required.
func dateRange(r *http.Request) (start, end time.Time, err error) {
	q := r.URL.Query()
	if start, err = dateParam("start", q.Get("start")); err != nil {
		return
	}
	end, err = dateParam("end", q.Get("end"))
	return
}

func dateParam(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, badRequest(name + " is required")
	}
	d, err := time.Parse(domain.ISODate, value)
	if err != nil {
		return time.Time{}, badRequest(fmt.Sprintf("invalid %s date %q, use YYYY-MM-DD", name, value))
	}
	return d, nil
}
