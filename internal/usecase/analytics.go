package usecase

import (
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// AnalyticsService computes aggregate counts over the store.
type AnalyticsService struct {
	Customers    domain.CustomerRepository
	Interactions domain.InteractionRepository
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(customers domain.CustomerRepository, interactions domain.InteractionRepository) AnalyticsService {
	return AnalyticsService{Customers: customers, Interactions: interactions}
}

// Overview returns totals and the sentiment distribution. Because every
// interaction carries exactly one sentiment label, the distribution values
// sum to the interaction total.
func (s AnalyticsService) Overview(ctx domain.Context) (domain.Analytics, error) {
	customers, err := s.Customers.Count(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	interactions, err := s.Interactions.Count(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	dist, err := s.Interactions.SentimentCounts(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	return domain.Analytics{
		TotalCustomers:        customers,
		TotalInteractions:     interactions,
		SentimentDistribution: dist,
	}, nil
}
