package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/analysis"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const analysisKeyPrefix = "gymplan::analysis::"

// AnalysisCache keeps the latest analysis result of every user in redis.
// Entries expire after ttl and are invalidated when a new log arrives.
type AnalysisCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewAnalysisCache(redisClient *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func analysisKey(userID string) string {
	return analysisKeyPrefix + userID
}

// Get returns the cached result, or false when there is none.
func (c *AnalysisCache) Get(ctx context.Context, userID string) (_ *analysis.Result, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analysis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	raw, err := c.redisClient.Get(ctx, analysisKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	res := &analysis.Result{}
	if err := json.Unmarshal(raw, res); err != nil {
		// broken entry, treat as a miss
		log.Errorf("unmarshal cached analysis for user [%s]: %s", userID, err)
		return nil, false, nil
	}
	return res, true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, res *analysis.Result) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analysis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := c.redisClient.Set(ctx, analysisKey(res.UserID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *AnalysisCache) Invalidate(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.analysis.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.redisClient.Del(ctx, analysisKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
