package weight

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=weight_test

type entriesLister interface {
	ListBetween(ctx context.Context, userID int, from, to time.Time) ([]Entry, error)
}

// DayAverage is the average weight of one calendar day.
type DayAverage struct {
	Day   time.Time `json:"day"`
	Kilos float64   `json:"kilos"`
}

type Trend struct {
	Days []DayAverage `json:"days"`
	// DeltaKilos is last day average minus first day average.
	DeltaKilos float64 `json:"deltaKilos"`
}

type Analyzer struct {
	repo entriesLister
}

func NewAnalyzer(repo entriesLister) *Analyzer {
	return &Analyzer{repo: repo}
}

// TrendBetween groups the entries per day, averages multiple measurements of
// the same day, and reports the overall weight change across the range.
func (a *Analyzer) TrendBetween(ctx context.Context, userID int, from, to time.Time) (_ *Trend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "weight.analyzer.trendBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.repo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &Trend{}, nil
	}

	sumPerDay := make(map[time.Time]float64)
	countPerDay := make(map[time.Time]int)
	for _, e := range entries {
		day := e.Timestamp.UTC().Truncate(24 * time.Hour)
		sumPerDay[day] += e.Kilos
		countPerDay[day]++
	}

	days := make([]DayAverage, 0, len(sumPerDay))
	for day, sum := range sumPerDay {
		days = append(days, DayAverage{
			Day:   day,
			Kilos: sum / float64(countPerDay[day]),
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})

	return &Trend{
		Days:       days,
		DeltaKilos: days[len(days)-1].Kilos - days[0].Kilos,
	}, nil
}
