package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"careerprep/internal/cache"
	"careerprep/internal/domain"
	"careerprep/internal/logger"

	"go.uber.org/zap"
)

// AnswerCacheService caches graded quiz answers. A quiz answer is fully
// determined by (question, selected option), so a hit skips grading;
// history persistence stays with the caller. Cache failures are never
// surfaced; grading works without Redis.
type AnswerCacheService interface {
	GetAnswer(ctx context.Context, questionID, selectedOption string) *domain.AnswerAnalysis
	PutAnswer(ctx context.Context, questionID, selectedOption string, analysis *domain.AnswerAnalysis)
}

type answerCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewAnswerCacheService wraps the cache port. cache may be nil, which
// disables caching.
func NewAnswerCacheService(c domain.Cache, ttl time.Duration) AnswerCacheService {
	return &answerCacheServiceImpl{cache: c, ttl: ttl}
}

func answerCacheKey(questionID, selectedOption string) string {
	sum := sha1.Sum([]byte(selectedOption))
	return cache.GenerateCacheKey("interview", "answer", questionID, hex.EncodeToString(sum[:]))
}

// GetAnswer returns the cached grading for the pair, or nil on miss or
// any cache failure.
func (s *answerCacheServiceImpl) GetAnswer(ctx context.Context, questionID, selectedOption string) *domain.AnswerAnalysis {
	if s.cache == nil {
		return nil
	}

	key := answerCacheKey(questionID, selectedOption)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("answer cache get failed", zap.Error(err), zap.String("key", key))
		}
		return nil
	}

	var analysis domain.AnswerAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		logger.Get().Warn("discarding malformed cached answer", zap.Error(err), zap.String("key", key))
		return nil
	}
	return &analysis
}

// PutAnswer stores the grading. Failures are logged and swallowed.
func (s *answerCacheServiceImpl) PutAnswer(ctx context.Context, questionID, selectedOption string, analysis *domain.AnswerAnalysis) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		logger.Get().Warn("could not encode answer for caching", zap.Error(err))
		return
	}

	key := answerCacheKey(questionID, selectedOption)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Warn("answer cache set failed", zap.Error(err), zap.String("key", key))
	}
}
