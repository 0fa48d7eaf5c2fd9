package repository

import (
	"context"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// CustomerMutator modifies a customer in place inside CustomerRepository.Update.
type CustomerMutator func(customer *entity.Customer) error

// CustomerRepository defines persistence operations for customers and
// their contracts.
type CustomerRepository interface {
	// List returns every customer in creation order.
	List(ctx context.Context) ([]*entity.Customer, error)

	// GetByID retrieves a customer.
	//
	// Returns:
	//   - error: ErrCustomerNotFound if the customer doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Customer, error)

	// Create assigns the next ID and identifier to customer and stores it.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update applies fn to the stored customer atomically.
	//
	// Returns:
	//   - error: ErrCustomerNotFound, or the error returned by fn
	Update(ctx context.Context, id string, fn CustomerMutator) (*entity.Customer, error)

	// Countries returns the country catalogue.
	Countries(ctx context.Context) ([]entity.Country, error)

	// Count returns the number of stored customers.
	Count(ctx context.Context) (int64, error)
}
