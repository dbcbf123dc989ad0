package service

import (
	"context"
	"time"

	"careerprep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(entry *domain.HistoryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) Query(role, level string) ([]*domain.HistoryEntry, error) {
	args := m.Called(role, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HistoryEntry), args.Error(1)
}

// --- MockTranscriber ---
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	args := m.Called(ctx, audio)
	return args.String(0), args.Error(1)
}

// --- MockSentimentAnalyzer ---
type MockSentimentAnalyzer struct {
	mock.Mock
}

func (m *MockSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(float64), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
