package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/enclave-health/fitplan/internal/eval"
	"github.com/enclave-health/fitplan/internal/telemetry/tracing"
	"github.com/enclave-health/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultSyncRecordsLimit = 100

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

type EvaluateResponse struct {
	PlanRecord
	CacheHit bool `json:"cacheHit"`
}

type ListPlansResponse struct {
	Plans []PlanRecord `json:"plans"`
	Total int          `json:"total"`
}

type SyncRecordsResponse struct {
	Records []SyncRecord `json:"records"`
}

// validateProfile guards the engine, which itself computes whatever the
// input arithmetic yields. Degenerate profiles stop here.
func validateProfile(profile eval.UserProfile) error {
	if profile.WeightKg <= 0 {
		return errors.New("weight must be positive")
	}
	if profile.HeightCm <= 0 {
		return errors.New("height must be positive")
	}
	if profile.Age <= 0 {
		return errors.New("age must be positive")
	}
	if !profile.Gender.IsValid() {
		return fmt.Errorf("unknown gender: %s", profile.Gender)
	}
	if !profile.FitnessAim.IsValid() {
		return fmt.Errorf("unknown fitness aim: %s", profile.FitnessAim)
	}
	return nil
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.evaluate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile eval.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("evaluate profile, unmarshal json params: %s", err)
		http.Error(w, "evaluate profile failed", http.StatusBadRequest)
		return
	}

	if err := validateProfile(profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, cacheHit, err := handler.service.Evaluate(ctx, profile)
	if err != nil {
		log.Errorf("failed to evaluate profile [aim %s]: %s", profile.FitnessAim, err)
		http.Error(w, "error, failed to evaluate profile", http.StatusInternalServerError)
		return
	}

	response := EvaluateResponse{
		PlanRecord: *record,
		CacheHit:   cacheHit,
	}
	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal evaluate response: %s", err)
		http.Error(w, "error, failed to evaluate profile", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusCreated
	if cacheHit {
		statusCode = http.StatusOK
	}

	log.Debugf("plan %d evaluated [aim %s] [cache hit: %t]", record.ID, profile.FitnessAim, cacheHit)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, statusCode)
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	record, err := handler.service.GetPlan(ctx, id)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		log.Errorf("failed to get plan %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to marshal plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list plans, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list plans, from <size> param: %s", err)
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

	records, total, err := handler.service.ListPlans(ctx, ListParams{
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list plans error: %s", err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(ListPlansResponse{
		Plans: records,
		Total: total,
	})
	if err != nil {
		log.Errorf("marshal plans error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func (handler *Handler) HandleSyncRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.syncRecords")
	defer span.End()

	limit := defaultSyncRecordsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit < 1 {
			http.Error(w, "invalid limit param", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	records, err := handler.service.ListSyncRecords(ctx, limit)
	if err != nil {
		log.Errorf("list sync records error: %s", err)
		http.Error(w, "failed to get sync records", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(SyncRecordsResponse{Records: records})
	if err != nil {
		log.Errorf("marshal sync records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}
