package progress

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/enclave-health/fitplan/internal/telemetry/metrics"
	"github.com/enclave-health/fitplan/internal/telemetry/tracing"
	"github.com/enclave-health/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	repo           progressRepo
	analyzer       *Analyzer
	metricsManager *metrics.Manager
}

func NewHandler(repo progressRepo, analyzer *Analyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		analyzer:       analyzer,
		metricsManager: metricsManager,
	}
}

type ListReportsResponse struct {
	Reports []WeightReport `json:"reports"`
	Total   int            `json:"total"`
}

func (handler *Handler) HandleAddReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addReport")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var report WeightReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Tracef("add weight report, unmarshal json params: %s", err)
		http.Error(w, "add weight report failed", http.StatusBadRequest)
		return
	}

	if report.WeightKg <= 0 {
		http.Error(w, "weight must be positive", http.StatusBadRequest)
		return
	}

	addedReport, err := handler.repo.Add(ctx, report)
	if err != nil {
		log.Errorf("failed to add weight report: %s", err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.CounterWeightReports.Inc()

	reportJson, err := json.Marshal(addedReport)
	if err != nil {
		log.Errorf("failed to marshal weight report: %s", err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}

	log.Debugf("weight report %d added: %.1f kg", addedReport.ID, addedReport.WeightKg)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusCreated)
}

func (handler *Handler) HandleWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weightHistory")
	defer span.End()

	history, err := handler.analyzer.WeightHistory(ctx)
	if err != nil {
		log.Errorf("weight history error: %s", err)
		http.Error(w, "failed to get weight history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal weight history error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list weight reports, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list weight reports, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	reports, total, err := handler.repo.List(ctx, ListParams{
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list weight reports error: %s", err)
		http.Error(w, "failed to get weight reports", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(ListReportsResponse{
		Reports: reports,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal weight reports error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}
