package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"sync"

	"nifty-advisor/internal/domain"
	"nifty-advisor/internal/indicator"
	"nifty-advisor/internal/score"

	"go.opentelemetry.io/otel/trace"
)

const (
	maxRecommendations = 10
	minScoreCutoff     = 40
)

// SeriesFetcher is the slice of MarketService the ranker needs.
type SeriesFetcher interface {
	Configured() error
	FetchSeries(ctx context.Context, symbol string) (domain.PriceSeries, domain.Exchange, error)
}

// RecommendService screens a fixed candidate universe against a user
// profile and returns the top-scoring affordable names.
type RecommendService struct {
	tracer        trace.Tracer
	market        SeriesFetcher
	engine        *score.Engine
	universe      []string
	workers       int
	defaultBudget float64
}

func NewRecommendService(
	tracer trace.Tracer,
	market SeriesFetcher,
	engine *score.Engine,
	universe []string,
	workers int,
	defaultBudget float64,
) *RecommendService {
	if workers <= 0 {
		workers = 4
	}
	if defaultBudget <= 0 {
		defaultBudget = 100000
	}
	return &RecommendService{
		tracer:        tracer,
		market:        market,
		engine:        engine,
		universe:      universe,
		workers:       workers,
		defaultBudget: defaultBudget,
	}
}

// Recommend evaluates every universe candidate with a bounded worker
// pool. Candidates share no mutable state beyond the series cache, so
// the per-symbol pipelines run independently; results land in
// candidate-list order before the stable sort, which preserves that
// order as the tie-break. Per-candidate failures are logged and
// skipped — one bad symbol never aborts the batch.
func (s *RecommendService) Recommend(ctx context.Context, profile domain.UserProfile, filters domain.ScreenFilters) ([]domain.RankedRecommendation, error) {
	ctx, span := s.tracer.Start(ctx, "recommend-service.recommend")
	defer span.End()

	if err := s.market.Configured(); err != nil {
		return nil, err
	}

	// Permissive defaulting: absent fields are substituted, not rejected.
	if profile.Budget <= 0 {
		profile.Budget = s.defaultBudget
	}
	if profile.RiskTolerance == "" {
		profile.RiskTolerance = domain.RiskToleranceMedium
	}

	results := make([]*domain.RankedRecommendation, len(s.universe))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.evaluate(ctx, s.universe[i], profile, filters)
			}
		}()
	}
	for i := range s.universe {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	ranked := make([]domain.RankedRecommendation, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Recommendation.Score > ranked[j].Recommendation.Score
	})
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}
	return ranked, nil
}

// evaluate runs the fetch+score pipeline for one candidate. A nil
// return means the candidate did not survive screening.
func (s *RecommendService) evaluate(ctx context.Context, candidate string, profile domain.UserProfile, filters domain.ScreenFilters) *domain.RankedRecommendation {
	series, _, err := s.market.FetchSeries(ctx, candidate)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("screening %s: %v", candidate, err)
		}
		return nil
	}

	price := series.Latest().Close
	if price <= 0 || price > profile.Budget {
		return nil
	}
	if !filters.Allows(0, 0, series.Latest().Volume, "") {
		return nil
	}

	snaps := indicator.Compute(series)
	rec := s.engine.Score(series, snaps, profile)
	if rec.Score < minScoreCutoff {
		return nil
	}

	return &domain.RankedRecommendation{
		Symbol:           candidate,
		CurrentPrice:     price,
		Recommendation:   rec,
		SharesAffordable: int64(math.Floor(profile.Budget / price)),
	}
}
