package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/enclave-health/fitplan/internal/eval"
	"github.com/enclave-health/fitplan/internal/telemetry/metrics"
	"github.com/enclave-health/fitplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansRepo interface {
	SaveProfile(ctx context.Context, profile eval.UserProfile) (int, error)
	SavePlan(ctx context.Context, profileID int, plan eval.PersonalizedPlan) (*PlanRecord, error)
	GetPlan(ctx context.Context, id int) (*PlanRecord, error)
	ListPlans(ctx context.Context, params ListParams) (_ []PlanRecord, total int, err error)
	AppendSyncRecord(ctx context.Context, record SyncRecord) (*SyncRecord, error)
	ListSyncRecords(ctx context.Context, limit int) ([]SyncRecord, error)
}

type Service struct {
	repo           plansRepo
	cache          *Cache
	metricsManager *metrics.Manager
}

func NewService(repo plansRepo, cache *Cache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

// Evaluate runs the evaluation engine for the given profile and persists
// the profile, the produced plan and a sync record. An identical profile
// seen within the cache window gets its stored record back without
// recomputing or re-persisting anything.
func (s *Service) Evaluate(ctx context.Context, profile eval.UserProfile) (_ *PlanRecord, cacheHit bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("profile.aim", profile.FitnessAim.String()))

	if record, ok := s.cache.Get(profile); ok {
		s.metricsManager.CounterPlanCacheHits.Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return record, true, nil
	}

	computeStart := time.Now()
	plan := eval.NewPlan(profile)
	s.metricsManager.HistPlanComputeDuration.Observe(time.Since(computeStart).Seconds())

	profileID, err := s.repo.SaveProfile(ctx, profile)
	if err != nil {
		return nil, false, fmt.Errorf("save profile: %w", err)
	}
	s.metricsManager.CounterProfilesCreated.Inc()

	record, err := s.repo.SavePlan(ctx, profileID, plan)
	if err != nil {
		return nil, false, fmt.Errorf("save plan: %w", err)
	}
	s.metricsManager.CounterPlansGenerated.Inc()

	// the sync log is best effort, a failed append never fails the evaluation
	if _, err := s.repo.AppendSyncRecord(ctx, SyncRecord{
		EntityType: SyncEntityPlan,
		EntityID:   record.ID,
		Operation:  SyncOpCreate,
	}); err != nil {
		log.Errorf("append sync record for plan %d: %s", record.ID, err)
	}

	s.cache.Set(profile, record)

	return record, false, nil
}

func (s *Service) GetPlan(ctx context.Context, id int) (_ *PlanRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.getPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return record, nil
}

func (s *Service) ListPlans(ctx context.Context, params ListParams) (_ []PlanRecord, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.listPlans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, total, err := s.repo.ListPlans(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list plans: %w", err)
	}
	return records, total, nil
}

func (s *Service) ListSyncRecords(ctx context.Context, limit int) (_ []SyncRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.listSyncRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.ListSyncRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync records: %w", err)
	}
	return records, nil
}
