package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/enclave-health/fitplan/internal/eval"
	"github.com/enclave-health/fitplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanNotFound = errors.New("plan not found")

type ListParams struct {
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) SaveProfile(ctx context.Context, profile eval.UserProfile) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.saveProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO user_profile
				(weight_kg, height_cm, age, gender, fitness_aim,
				 bench_press_kg, squat_kg, deadlift_kg, overhead_press_kg, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
			RETURNING id;`,
		profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.FitnessAim,
		profile.BenchPressKg, profile.SquatKg, profile.DeadliftKg, profile.OverheadPressKg,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}

	span.SetAttributes(attribute.Int("profile.id", id))
	return id, nil
}

func (r *Repo) SavePlan(ctx context.Context, profileID int, plan eval.PersonalizedPlan) (_ *PlanRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.savePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("profile.id", profileID))

	planJson, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}

	record := &PlanRecord{
		ProfileID: profileID,
		Plan:      plan,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO personalized_plan (profile_id, plan, created_at)
				VALUES ($1, $2, now())
			RETURNING id, created_at;`,
		profileID, planJson,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	span.SetAttributes(attribute.Int("plan.id", record.ID))
	return record, nil
}

func (r *Repo) GetPlan(ctx context.Context, id int) (_ *PlanRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	record := &PlanRecord{}
	var planJson []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT id, profile_id, plan, created_at
			FROM personalized_plan
			WHERE id = $1;`,
		id,
	).Scan(&record.ID, &record.ProfileID, &planJson, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(planJson, &record.Plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}

	return record, nil
}

func (r *Repo) ListPlans(ctx context.Context, params ListParams) (_ []PlanRecord, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listPlans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.
		QueryRow(ctx, `SELECT COUNT(*) FROM personalized_plan;`).
		Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plans: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, profile_id, plan, created_at
			FROM personalized_plan
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var record PlanRecord
		var planJson []byte
		if err := rows.Scan(&record.ID, &record.ProfileID, &planJson, &record.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(planJson, &record.Plan); err != nil {
			return nil, 0, fmt.Errorf("unmarshal plan: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *Repo) AppendSyncRecord(ctx context.Context, record SyncRecord) (_ *SyncRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.appendSyncRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sync_record (entity_type, entity_id, operation, created_at)
				VALUES ($1, $2, $3, now())
			RETURNING id, created_at;`,
		record.EntityType, record.EntityID, record.Operation,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert sync record: %w", err)
	}

	return &record, nil
}

func (r *Repo) ListSyncRecords(ctx context.Context, limit int) (_ []SyncRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listSyncRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, entity_type, entity_id, operation, created_at
			FROM sync_record
			ORDER BY id DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SyncRecord
	for rows.Next() {
		var record SyncRecord
		if err := rows.Scan(
			&record.ID, &record.EntityType, &record.EntityID,
			&record.Operation, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
