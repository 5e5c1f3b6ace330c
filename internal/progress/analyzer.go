package progress

import (
	"context"
	"time"

	"github.com/enclave-health/fitplan/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type progressRepo interface {
	Add(ctx context.Context, report WeightReport) (*WeightReport, error)
	ListAll(ctx context.Context) ([]WeightReport, error)
	List(ctx context.Context, params ListParams) (_ []WeightReport, total int, err error)
}

// WeightHistory represents the weight progress over time
// so that, for each day, we get the average reported weight
type WeightHistory struct {
	Stats map[time.Time]WeightStats `json:"stats"`
	// TotalChangeKg is the difference between the average weight
	// of the last reported day and the first reported day
	TotalChangeKg float64 `json:"totalChangeKg"`
}

type WeightStats struct {
	AvgWeightKg float64 `json:"avgWeightKg"`
	Reports     int     `json:"reports"`
}

type Analyzer struct {
	repo progressRepo
}

func NewAnalyzer(repo progressRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) WeightHistory(ctx context.Context) (_ *WeightHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.weightHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reports, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	day2reports := make(map[time.Time][]WeightReport)
	for _, report := range reports {
		day := report.CreatedAt.Truncate(24 * time.Hour)
		day2reports[day] = append(day2reports[day], report)
	}

	stats := make(map[time.Time]WeightStats)
	for day, dayReports := range day2reports {
		var totalWeight float64
		for _, report := range dayReports {
			totalWeight += report.WeightKg
		}
		stats[day] = WeightStats{
			AvgWeightKg: totalWeight / float64(len(dayReports)),
			Reports:     len(dayReports),
		}
	}

	span.SetAttributes(attribute.Int("days.count", len(stats)))

	if len(stats) == 0 {
		return &WeightHistory{Stats: stats}, nil
	}

	var firstDay, lastDay time.Time
	for day := range stats {
		if firstDay.IsZero() || day.Before(firstDay) {
			firstDay = day
		}
		if lastDay.IsZero() || day.After(lastDay) {
			lastDay = day
		}
	}

	return &WeightHistory{
		Stats:         stats,
		TotalChangeKg: stats[lastDay].AvgWeightKg - stats[firstDay].AvgWeightKg,
	}, nil
}
