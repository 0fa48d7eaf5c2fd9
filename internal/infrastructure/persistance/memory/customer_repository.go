package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

// CustomerRepository is a slice-backed repository.CustomerRepository.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*entity.Customer
	sequence  int
	countries []entity.Country
}

// NewCustomerRepository creates a store holding copies of the given customers.
func NewCustomerRepository(seed []entity.Customer, countries []entity.Country) *CustomerRepository {
	r := &CustomerRepository{
		customers: make([]*entity.Customer, 0, len(seed)),
		sequence:  len(seed),
		countries: append([]entity.Country(nil), countries...),
	}
	for i := range seed {
		r.customers = append(r.customers, seed[i].Clone())
	}
	return r
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if c := r.find(id); c != nil {
		return c.Clone(), nil
	}
	return nil, repository.ErrCustomerNotFound
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if customer == nil {
		return repository.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	customer.ID = strconv.Itoa(r.sequence)
	customer.Identifier = fmt.Sprintf("CUST%03d", r.sequence)
	r.customers = append(r.customers, customer.Clone())
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, fn repository.CustomerMutator) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.customers {
		if c.ID != id {
			continue
		}
		working := c.Clone()
		if err := fn(working); err != nil {
			return nil, err
		}
		r.customers[i] = working
		return working.Clone(), nil
	}
	return nil, repository.ErrCustomerNotFound
}

func (r *CustomerRepository) Countries(ctx context.Context) ([]entity.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.Country(nil), r.countries...), nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}

func (r *CustomerRepository) find(id string) *entity.Customer {
	for _, c := range r.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}
