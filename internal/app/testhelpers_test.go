package app_test

import (
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
	"github.com/fairyhunter13/ai-customer-chat/internal/usecase"
)

type noopProvider struct{}

func (noopProvider) Complete(_ domain.Context, _, _ string) (string, error) { return "ok", nil }

type noopResolver struct{}

func (noopResolver) Resolve(string) (domain.ChatProvider, error) { return noopProvider{}, nil }

type noopCleaner struct{}

func (noopCleaner) Clean(raw string) string { return raw }

type noopCustomerRepo struct{}

func (noopCustomerRepo) Create(_ domain.Context, name, email string) (domain.Customer, error) {
	return domain.Customer{ID: 1, Name: name, Email: email}, nil
}
func (noopCustomerRepo) List(_ domain.Context) ([]domain.Customer, error) {
	return []domain.Customer{}, nil
}
func (noopCustomerRepo) Count(_ domain.Context) (int64, error) { return 0, nil }

type noopInteractionRepo struct{}

func (noopInteractionRepo) Create(_ domain.Context, it domain.Interaction) (domain.Interaction, error) {
	it.ID = 1
	return it, nil
}
func (noopInteractionRepo) ListByCustomer(_ domain.Context, _ int64) ([]domain.Interaction, error) {
	return []domain.Interaction{}, nil
}
func (noopInteractionRepo) Count(_ domain.Context) (int64, error) { return 0, nil }
func (noopInteractionRepo) SentimentCounts(_ domain.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func testChatService() usecase.ChatService {
	return usecase.NewChatService(noopResolver{}, noopCleaner{}, noopInteractionRepo{}, "answer", "sentiment")
}

func testCustomerService() usecase.CustomerService {
	return usecase.NewCustomerService(noopCustomerRepo{}, noopInteractionRepo{})
}

func testAnalyticsService() usecase.AnalyticsService {
	return usecase.NewAnalyticsService(noopCustomerRepo{}, noopInteractionRepo{})
}
