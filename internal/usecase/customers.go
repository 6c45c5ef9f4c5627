package usecase

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// CustomerService manages customer records and their interaction history.
type CustomerService struct {
	Customers    domain.CustomerRepository
	Interactions domain.InteractionRepository
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers domain.CustomerRepository, interactions domain.InteractionRepository) CustomerService {
	return CustomerService{Customers: customers, Interactions: interactions}
}

// Create registers a new customer. Name and email are required; a duplicate
// email surfaces as domain.ErrConflict from the repository.
func (s CustomerService) Create(ctx domain.Context, name, email string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return domain.Customer{}, fmt.Errorf("%w: name and email required", domain.ErrInvalidArgument)
	}
	return s.Customers.Create(ctx, name, email)
}

// List returns all customers.
func (s CustomerService) List(ctx domain.Context) ([]domain.Customer, error) {
	return s.Customers.List(ctx)
}

// ListInteractions returns the interaction log for one customer, oldest
// first. A customer with no interactions yields an empty slice.
func (s CustomerService) ListInteractions(ctx domain.Context, customerID int64) ([]domain.Interaction, error) {
	return s.Interactions.ListByCustomer(ctx, customerID)
}
