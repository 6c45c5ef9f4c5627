package usecase_test

import (
	"strings"

	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// fakeProvider returns queued replies in order and records every call.
type fakeProvider struct {
	replies []string
	errs    []error
	calls   []string // system prompts, in call order
}

func (f *fakeProvider) Complete(_ domain.Context, systemPrompt, _ string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, systemPrompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", nil
}

// fakeResolver hands out one provider and records the requested model IDs.
type fakeResolver struct {
	provider domain.ChatProvider
	err      error
	resolved []string
}

func (f *fakeResolver) Resolve(modelID string) (domain.ChatProvider, error) {
	f.resolved = append(f.resolved, modelID)
	if f.err != nil {
		return nil, f.err
	}
	return f.provider, nil
}

// passCleaner trims without rewriting, keeping test fixtures literal.
type passCleaner struct{}

func (passCleaner) Clean(raw string) string { return strings.TrimSpace(raw) }

type fakeInteractionRepo struct {
	created    []domain.Interaction
	createErr  error
	list       []domain.Interaction
	count      int64
	sentiments map[string]int64
	err        error
}

func (f *fakeInteractionRepo) Create(_ domain.Context, it domain.Interaction) (domain.Interaction, error) {
	if f.createErr != nil {
		return domain.Interaction{}, f.createErr
	}
	it.ID = int64(len(f.created) + 1)
	f.created = append(f.created, it)
	return it, nil
}

func (f *fakeInteractionRepo) ListByCustomer(_ domain.Context, _ int64) ([]domain.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.list == nil {
		return []domain.Interaction{}, nil
	}
	return f.list, nil
}

func (f *fakeInteractionRepo) Count(_ domain.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeInteractionRepo) SentimentCounts(_ domain.Context) (map[string]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sentiments, nil
}

type fakeCustomerRepo struct {
	created []domain.Customer
	list    []domain.Customer
	count   int64
	err     error
}

func (f *fakeCustomerRepo) Create(_ domain.Context, name, email string) (domain.Customer, error) {
	if f.err != nil {
		return domain.Customer{}, f.err
	}
	c := domain.Customer{ID: int64(len(f.created) + 1), Name: name, Email: email}
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCustomerRepo) List(_ domain.Context) ([]domain.Customer, error) {
	return f.list, f.err
}

func (f *fakeCustomerRepo) Count(_ domain.Context) (int64, error) {
	return f.count, f.err
}
