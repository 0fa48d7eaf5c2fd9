package service

import (
	"context"
	"fmt"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

// CreateCustomerInput carries the fields of a new customer.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Country   string
	State     string
	Address   string
}

// CustomerService implements the customer and contract use cases.
type CustomerService struct {
	customers repository.CustomerRepository
	logger    port.Logger
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(customers repository.CustomerRepository, logger port.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// List returns every customer.
func (s *CustomerService) List(ctx context.Context) ([]*entity.Customer, error) {
	return s.customers.List(ctx)
}

// Get returns one customer.
func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create stores a new active customer.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(in.FirstName, in.LastName, in.Email)
	if err != nil {
		return nil, err
	}
	// Optional fields go through Apply so they are trimmed like updates.
	if err := customer.Apply(entity.CustomerUpdate{
		Phone:   &in.Phone,
		Country: &in.Country,
		State:   &in.State,
		Address: &in.Address,
	}); err != nil {
		return nil, err
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.WithContext(ctx).Info("Customer created", "customer_id", customer.ID, "identifier", customer.Identifier)
	return customer, nil
}

// Update merges u into the customer.
func (s *CustomerService) Update(ctx context.Context, id string, u entity.CustomerUpdate) (*entity.Customer, error) {
	return s.customers.Update(ctx, id, func(c *entity.Customer) error {
		return c.Apply(u)
	})
}

// AddContract adds an active contract to the customer.
func (s *CustomerService) AddContract(ctx context.Context, customerID string, serviceType entity.ContractServiceType) (entity.Contract, error) {
	var contract entity.Contract
	_, err := s.customers.Update(ctx, customerID, func(c *entity.Customer) error {
		var err error
		contract, err = c.AddContract(serviceType)
		return err
	})
	if err != nil {
		return entity.Contract{}, err
	}

	s.logger.WithContext(ctx).Info("Contract added",
		"customer_id", customerID,
		"contract_number", contract.ContractNumber,
	)
	return contract, nil
}

// UpdateContract merges u into one of the customer's contracts.
//
// Returns:
//   - error: ErrCustomerNotFound, ErrContractNotFound or a validation error
func (s *CustomerService) UpdateContract(ctx context.Context, customerID, contractID string, u entity.ContractUpdate) (entity.Contract, error) {
	var contract entity.Contract
	_, err := s.customers.Update(ctx, customerID, func(c *entity.Customer) error {
		updated, found, err := c.UpdateContract(contractID, u)
		if !found {
			return repository.ErrContractNotFound
		}
		contract = updated
		return err
	})
	if err != nil {
		return entity.Contract{}, err
	}
	return contract, nil
}

// Countries returns the country catalogue.
func (s *CustomerService) Countries(ctx context.Context) ([]entity.Country, error) {
	return s.customers.Countries(ctx)
}
