package achievements

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/fitstats/internal/activity"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=achievements_test

type achievementsRepo interface {
	ListForUser(ctx context.Context, userID int) (map[string]Record, error)
	Upsert(ctx context.Context, userID int, def Definition, record Record) error
}

type activityRecorder interface {
	RecordAsync(userID int, kind, details string)
}

// Evaluator computes the achievement state of a user from the workout
// history and reconciles it with the stored records. An achievement, once
// stored as achieved, never flips back, regardless of later history edits.
// Progress is recomputed fresh on every pass.
//
// Concurrent passes for the same user are not coordinated. Both compute from
// the same source data and write a monotonic merge, so last write wins and
// the stored state converges.
type Evaluator struct {
	catalog        []Definition
	repo           achievementsRepo
	activity       activityRecorder
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewEvaluator(
	catalog []Definition,
	repo achievementsRepo,
	activity activityRecorder,
	metricsManager *metrics.Manager,
) *Evaluator {
	return &Evaluator{
		catalog:        catalog,
		repo:           repo,
		activity:       activity,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// GetUserAchievements runs one evaluation pass: read stored records, compute
// fresh state from the sessions, merge, persist, and return the merged view
// in catalog order. Re-running with identical inputs writes identical state.
func (e *Evaluator) GetUserAchievements(
	ctx context.Context,
	userID int,
	sessions []workouts.Session,
) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "achievements.evaluator.getUserAchievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e.metricsManager.CounterAchievementsEvals.Inc()

	stored, err := e.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read achievement records: %w", err)
	}

	ascending := sortedByDateAsc(sessions)

	result := make([]Achievement, 0, len(e.catalog))
	for _, def := range e.catalog {
		computed := e.evaluate(def.Criteria, ascending)

		storedRec, found := stored[def.ID]
		merged := Record{
			ID:       def.ID,
			Achieved: computed.achieved,
			Progress: computed.progress,
		}
		if found && storedRec.Achieved {
			merged.Achieved = true
		}

		switch {
		case found && storedRec.AchievedDate != nil:
			merged.AchievedDate = storedRec.AchievedDate
		case computed.achievedDate != nil:
			merged.AchievedDate = computed.achievedDate
		case merged.Achieved:
			// achieved but no date could be derived, stamp the pass time
			now := e.now()
			merged.AchievedDate = &now
		}

		if merged.Achieved && !(found && storedRec.Achieved) {
			e.metricsManager.CounterAchievementsUnlocks.Inc()
			e.activity.RecordAsync(userID, activity.KindAchievementUnlocked, def.ID)
		}

		result = append(result, Achievement{
			ID:           def.ID,
			Title:        def.Title,
			Description:  def.Description,
			Icon:         def.Icon,
			Criteria:     def.Criteria,
			Achieved:     merged.Achieved,
			AchievedDate: merged.AchievedDate,
			Progress:     merged.Progress,
		})
	}

	for i, def := range e.catalog {
		a := result[i]
		if err := e.repo.Upsert(ctx, userID, def, Record{
			ID:           a.ID,
			Achieved:     a.Achieved,
			AchievedDate: a.AchievedDate,
			Progress:     a.Progress,
		}); err != nil {
			return nil, fmt.Errorf("upsert achievement record %s: %w", def.ID, err)
		}
	}

	return result, nil
}

type evalResult struct {
	achieved     bool
	achievedDate *time.Time
	progress     int
}

// evaluate dispatches on the criterion kind. Unknown kinds, including the
// reserved streak kind, evaluate to not achieved instead of erroring, so a
// catalog can carry entries this version does not score yet.
func (e *Evaluator) evaluate(criteria Criteria, ascending []workouts.Session) evalResult {
	switch criteria.Kind {
	case CriterionCount:
		return evaluateCount(criteria.Threshold, ascending)
	case CriterionSingleSessionDuration:
		return evaluateSingleSessionDuration(criteria.Threshold, ascending)
	case CriterionCumulativeDuration:
		return evaluateCumulativeDuration(criteria.Threshold, ascending)
	default:
		return evalResult{}
	}
}

func evaluateCount(threshold int, ascending []workouts.Session) evalResult {
	res := evalResult{
		progress: percentage(len(ascending), threshold),
	}
	if threshold > 0 && len(ascending) >= threshold {
		res.achieved = true
		// the session that crossed the threshold
		res.achievedDate = &ascending[threshold-1].Date
	}
	return res
}

func evaluateSingleSessionDuration(threshold int, ascending []workouts.Session) evalResult {
	var res evalResult
	maxDuration := 0
	for i := range ascending {
		if ascending[i].DurationMinutes > maxDuration {
			maxDuration = ascending[i].DurationMinutes
		}
		if !res.achieved && threshold > 0 && ascending[i].DurationMinutes >= threshold {
			// earliest qualifying session
			res.achieved = true
			res.achievedDate = &ascending[i].Date
		}
	}
	res.progress = percentage(maxDuration, threshold)
	return res
}

func evaluateCumulativeDuration(threshold int, ascending []workouts.Session) evalResult {
	var res evalResult
	sum := 0
	for i := range ascending {
		sum += ascending[i].DurationMinutes
		if !res.achieved && threshold > 0 && sum >= threshold {
			res.achieved = true
			res.achievedDate = &ascending[i].Date
		}
	}
	res.progress = percentage(sum, threshold)
	return res
}

// percentage caps at 100 and rounds to the nearest integer.
func percentage(value, threshold int) int {
	if threshold <= 0 || value <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(value) / float64(threshold)))
	if p > 100 {
		return 100
	}
	return p
}

func sortedByDateAsc(sessions []workouts.Session) []workouts.Session {
	ascending := make([]workouts.Session, len(sessions))
	copy(ascending, sessions)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].Date.Before(ascending[j].Date)
	})
	return ascending
}
