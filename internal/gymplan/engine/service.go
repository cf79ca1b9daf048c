package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymplan/internal/cache"
	"github.com/2beens/gymplan/internal/gymplan/analysis"
	"github.com/2beens/gymplan/internal/gymplan/goals"
	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/program"
	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/recommendation"
	"github.com/2beens/gymplan/internal/gymplan/store"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// MaxInsightRecommendations caps the recommendations returned with the insights.
const MaxInsightRecommendations = 5

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=engine_test

type logStore interface {
	AddLog(ctx context.Context, wl *workouts.Log) error
	ListLogs(ctx context.Context, userID string, limit int) ([]workouts.Log, error)
	GetProfile(ctx context.Context, userID string) (*workouts.Profile, error)
	SaveProfile(ctx context.Context, profile workouts.Profile) error
}

type progressionTracker interface {
	ApplyLog(ctx context.Context, wl workouts.Log) (*progression.TrainingData, error)
	TrainingData(ctx context.Context, userID string) (*progression.TrainingData, error)
	UpdateAggregates(ctx context.Context, userID string, prefs progression.Preferences, patterns progression.Patterns) error
	ResetBest(ctx context.Context, userID, exerciseID string) (bool, error)
}

type analysisCache interface {
	Get(ctx context.Context, userID string) (*analysis.Result, bool, error)
	Set(ctx context.Context, res *analysis.Result) error
	Invalidate(ctx context.Context, userID string) error
}

type goalLister interface {
	List(ctx context.Context, userID string) ([]goals.View, error)
}

// Insights is the holistic view of a user: ranked recommendations next to the goals.
type Insights struct {
	UserID          string                          `json:"userId"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
	Goals           []goals.View                    `json:"goals"`
	Preferences     progression.Preferences         `json:"preferences"`
	Patterns        progression.Patterns            `json:"patterns"`
	GeneratedAt     time.Time                       `json:"generatedAt"`
}

type NewServiceParams struct {
	Catalog        *periodization.Catalog
	ProgramCache   *cache.ProgramCache
	Store          logStore
	Tracker        progressionTracker
	AnalysisCache  analysisCache
	Goals          goalLister
	MetricsManager *metrics.Manager
}

// Service composes the engine components with their persistence collaborators.
type Service struct {
	catalog        *periodization.Catalog
	generator      *program.Generator
	programCache   *cache.ProgramCache
	store          logStore
	tracker        progressionTracker
	analysisCache  analysisCache
	goals          goalLister
	metricsManager *metrics.Manager
	now            func() time.Time

	dirtyMutex  sync.Mutex
	dirtyUsers  map[string]struct{}
	generations map[string]uint64
}

func NewService(params NewServiceParams) *Service {
	catalog := params.Catalog
	if catalog == nil {
		catalog = periodization.DefaultCatalog()
	}
	return &Service{
		catalog:        catalog,
		generator:      program.NewGenerator(catalog),
		programCache:   params.ProgramCache,
		store:          params.Store,
		tracker:        params.Tracker,
		analysisCache:  params.AnalysisCache,
		goals:          params.Goals,
		metricsManager: params.MetricsManager,
		now:            time.Now,
		dirtyUsers:     make(map[string]struct{}),
		generations:    make(map[string]uint64),
	}
}

func (s *Service) PeriodizationConfig(t periodization.Type) (periodization.Config, error) {
	return s.catalog.Config(t)
}

// RecommendPeriodization picks the periodization type for the level and goal and returns its config.
func (s *Service) RecommendPeriodization(level periodization.Level, goal periodization.Goal) (periodization.Config, error) {
	return s.catalog.Config(periodization.Recommend(level, goal))
}

// GeneratePlan returns the program structure for params. Generation is deterministic,
// so cached structures are served as they are.
func (s *Service) GeneratePlan(ctx context.Context, params program.Params) (_ *program.Structure, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.engine.generateplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", params.Type.String()))
	span.SetAttributes(attribute.Int("duration_weeks", params.DurationWeeks))

	if s.programCache != nil {
		if structure, ok := s.programCache.Get(params); ok {
			s.metricsManager.CounterProgramCacheHits.Inc()
			return structure, nil
		}
	}

	structure, err := s.generator.Generate(params)
	if err != nil {
		return nil, err
	}
	s.metricsManager.CounterProgramsGenerated.WithLabelValues(params.Type.String()).Inc()

	if s.programCache != nil {
		s.programCache.Set(params, structure)
	}
	return structure, nil
}

// ApplyLog validates and stores the log, then updates the progression state of the user.
// A malformed log changes nothing.
func (s *Service) ApplyLog(ctx context.Context, wl workouts.Log) (_ *progression.TrainingData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.applylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", wl.UserID))

	if err := wl.Validate(); err != nil {
		s.metricsManager.CounterMalformedLogs.Inc()
		return nil, err
	}

	if err := s.store.AddLog(ctx, &wl); err != nil {
		return nil, fmt.Errorf("add log: %w", err)
	}

	data, err := s.tracker.ApplyLog(ctx, wl)
	if err != nil {
		return nil, fmt.Errorf("apply log: %w", err)
	}
	s.metricsManager.CounterLogsApplied.Inc()

	s.markDirty(wl.UserID)
	if err := s.analysisCache.Invalidate(ctx, wl.UserID); err != nil {
		log.Errorf("invalidate analysis cache for user [%s]: %s", wl.UserID, err)
	}

	return data, nil
}

// Analyze returns the analysis of the user, from cache if it is still there.
func (s *Service) Analyze(ctx context.Context, userID string) (_ *analysis.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	cached, found, err := s.analysisCache.Get(ctx, userID)
	if err != nil {
		log.Errorf("get cached analysis for user [%s]: %s", userID, err)
	} else if found {
		s.metricsManager.CounterAnalysisCacheHits.Inc()
		return cached, nil
	}

	return s.analyze(ctx, userID)
}

// analyze computes a fresh analysis of the user. The result is cached and the user cleared
// only if no new data arrived while it was computed.
func (s *Service) analyze(ctx context.Context, userID string) (*analysis.Result, error) {
	start := time.Now()
	gen := s.generation(userID)

	var (
		logs    []workouts.Log
		data    *progression.TrainingData
		profile workouts.Profile
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.store.ListLogs(gCtx, userID, 0)
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data, err = s.tracker.TrainingData(gCtx, userID)
		if err != nil {
			return fmt.Errorf("get training data: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		p, err := s.store.GetProfile(gCtx, userID)
		if errors.Is(err, store.ErrNotFound) {
			profile = workouts.Profile{UserID: userID}
			return nil
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		profile = *p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := analysis.Analyze(analysis.Input{
		Logs:    logs,
		Profile: profile,
		Data:    data,
		Now:     s.now(),
	})
	res.UserID = userID
	s.metricsManager.HistAnalysisDuration.Observe(time.Since(start).Seconds())

	for _, c := range res.Candidates {
		s.metricsManager.CounterRecommendations.WithLabelValues(string(c.Kind), string(c.Priority)).Inc()
	}

	if s.generation(userID) != gen {
		log.Debugf("user [%s] got new data during analysis, result not cached", userID)
		return res, nil
	}

	if err := s.tracker.UpdateAggregates(ctx, userID, res.Preferences, res.Patterns); err != nil {
		return nil, fmt.Errorf("update aggregates: %w", err)
	}

	if err := s.analysisCache.Set(ctx, res); err != nil {
		log.Errorf("cache analysis for user [%s]: %s", userID, err)
	}
	if !s.clearDirty(userID, gen) {
		// new data landed between the check above and the cache write
		if err := s.analysisCache.Invalidate(ctx, userID); err != nil {
			log.Errorf("invalidate analysis cache for user [%s]: %s", userID, err)
		}
	}

	log.Tracef("analysed user [%s]: %d logs, %d candidates", userID, len(logs), len(res.Candidates))
	return res, nil
}

// Insights ranks the analysis recommendations and puts them next to the goals of the user.
func (s *Service) Insights(ctx context.Context, userID string) (_ *Insights, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.insights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	res, err := s.Analyze(ctx, userID)
	if err != nil {
		return nil, err
	}

	views, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return &Insights{
		UserID:          userID,
		Recommendations: recommendation.Top(res.Candidates, MaxInsightRecommendations),
		Goals:           views,
		Preferences:     res.Preferences,
		Patterns:        res.Patterns,
		GeneratedAt:     s.now().UTC(),
	}, nil
}

func (s *Service) TrainingData(ctx context.Context, userID string) (*progression.TrainingData, error) {
	return s.tracker.TrainingData(ctx, userID)
}

// ResetBest resets the best values of the exercise, returns false if the user never logged it.
func (s *Service) ResetBest(ctx context.Context, userID, exerciseID string) (bool, error) {
	reset, err := s.tracker.ResetBest(ctx, userID, exerciseID)
	if err != nil || !reset {
		return reset, err
	}
	s.markDirty(userID)
	if err := s.analysisCache.Invalidate(ctx, userID); err != nil {
		log.Errorf("invalidate analysis cache for user [%s]: %s", userID, err)
	}
	return true, nil
}

// Profile returns the stored profile, or an empty one if the user never saved it.
func (s *Service) Profile(ctx context.Context, userID string) (*workouts.Profile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &workouts.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *Service) SaveProfile(ctx context.Context, profile workouts.Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.saveprofile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", profile.UserID))

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.markDirty(profile.UserID)
	if err := s.analysisCache.Invalidate(ctx, profile.UserID); err != nil {
		log.Errorf("invalidate analysis cache for user [%s]: %s", profile.UserID, err)
	}
	return nil
}

func (s *Service) markDirty(userID string) {
	s.dirtyMutex.Lock()
	defer s.dirtyMutex.Unlock()
	s.dirtyUsers[userID] = struct{}{}
	s.generations[userID]++
	s.metricsManager.GaugeDirtyUsers.Set(float64(len(s.dirtyUsers)))
}

func (s *Service) generation(userID string) uint64 {
	s.dirtyMutex.Lock()
	defer s.dirtyMutex.Unlock()
	return s.generations[userID]
}

// clearDirty clears the user only if it was not marked dirty again after gen was taken.
func (s *Service) clearDirty(userID string, gen uint64) bool {
	s.dirtyMutex.Lock()
	defer s.dirtyMutex.Unlock()
	if s.generations[userID] != gen {
		return false
	}
	delete(s.dirtyUsers, userID)
	s.metricsManager.GaugeDirtyUsers.Set(float64(len(s.dirtyUsers)))
	return true
}

func (s *Service) DirtyUsers() []string {
	s.dirtyMutex.Lock()
	defer s.dirtyMutex.Unlock()
	users := make([]string, 0, len(s.dirtyUsers))
	for u := range s.dirtyUsers {
		users = append(users, u)
	}
	return users
}

// RefreshDirty re-analyses every user that got new data since the last analysis.
// Failed users stay dirty and are retried on the next call.
func (s *Service) RefreshDirty(ctx context.Context) (refreshed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.engine.refreshdirty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, userID := range s.DirtyUsers() {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}
		if _, err := s.analyze(ctx, userID); err != nil {
			log.Errorf("refresh analysis for user [%s]: %s", userID, err)
			continue
		}
		refreshed++
	}
	span.SetAttributes(attribute.Int("refreshed", refreshed))
	return refreshed, nil
}

// RunRefresher calls RefreshDirty every interval until ctx is done.
func (s *Service) RunRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debugf("analysis refresher started, interval: %s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("analysis refresher stopped")
			return
		case <-ticker.C:
			refreshed, err := s.RefreshDirty(ctx)
			if err != nil {
				log.Warnf("refresh dirty users: %s", err)
			}
			if refreshed > 0 {
				log.Debugf("refreshed analysis of %d users", refreshed)
			}
		}
	}
}
