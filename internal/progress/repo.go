package progress

import (
	"context"
	"fmt"

	"github.com/enclave-health/fitplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, report WeightReport) (_ *WeightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if report.CreatedAt.IsZero() {
		err = r.db.QueryRow(
			ctx,
			`INSERT INTO weight_report (weight_kg, note, created_at)
					VALUES ($1, $2, now())
				RETURNING id, created_at;`,
			report.WeightKg, report.Note,
		).Scan(&report.ID, &report.CreatedAt)
	} else {
		err = r.db.QueryRow(
			ctx,
			`INSERT INTO weight_report (weight_kg, note, created_at)
					VALUES ($1, $2, $3)
				RETURNING id;`,
			report.WeightKg, report.Note, report.CreatedAt,
		).Scan(&report.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert weight report: %w", err)
	}

	span.SetAttributes(attribute.Int("report.id", report.ID))
	return &report, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []WeightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, weight_kg, note, created_at
			FROM weight_report
			ORDER BY created_at ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []WeightReport
	for rows.Next() {
		var report WeightReport
		if err := rows.Scan(&report.ID, &report.WeightKg, &report.Note, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("reports.count", len(reports)))
	return reports, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []WeightReport, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.
		QueryRow(ctx, `SELECT COUNT(*) FROM weight_report;`).
		Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count weight reports: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, weight_kg, note, created_at
			FROM weight_report
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reports []WeightReport
	for rows.Next() {
		var report WeightReport
		if err := rows.Scan(&report.ID, &report.WeightKg, &report.Note, &report.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
