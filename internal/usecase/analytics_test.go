package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-customer-chat/internal/usecase"
)

func TestAnalyticsOverview(t *testing.T) {
	t.Parallel()
	customers := &fakeCustomerRepo{count: 3}
	interactions := &fakeInteractionRepo{
		count:      6,
		sentiments: map[string]int64{"positive": 3, "negative": 1, "neutral": 2},
	}
	svc := usecase.NewAnalyticsService(customers, interactions)

	a, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.TotalCustomers)
	assert.Equal(t, int64(6), a.TotalInteractions)

	var sum int64
	for _, n := range a.SentimentDistribution {
		sum += n
	}
	assert.Equal(t, a.TotalInteractions, sum)
}

func TestAnalyticsOverview_Empty(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyticsService(&fakeCustomerRepo{}, &fakeInteractionRepo{sentiments: map[string]int64{}})

	a, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, a.TotalCustomers)
	assert.Zero(t, a.TotalInteractions)
	assert.Empty(t, a.SentimentDistribution)
}

func TestAnalyticsOverview_RepoError(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyticsService(&fakeCustomerRepo{err: assert.AnError}, &fakeInteractionRepo{})

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
