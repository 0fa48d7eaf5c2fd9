package service

import (
	"context"
	"testing"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/logging"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/persistance/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusinessUnitService() *BusinessUnitService {
	repo := memory.NewBusinessUnitRepository(memory.SeedBusinessUnits(), memory.BusinessUnitTypes(), memory.BusinessUnitStatuses())
	return NewBusinessUnitService(repo, logging.Nop())
}

func TestBusinessUnitService_SearchDefaults(t *testing.T) {
	svc := newBusinessUnitService()

	page, err := svc.Search(context.Background(), repository.BusinessUnitFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Units, 5)

	page, err = svc.Search(context.Background(), repository.BusinessUnitFilter{Page: 2, PageSize: 1000, Status: entity.BusinessUnitStatusActive})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, int64(4), page.Total)
	assert.Empty(t, page.Units)
}

func TestBusinessUnitService_CreateAndDelete(t *testing.T) {
	svc := newBusinessUnitService()
	ctx := context.Background()

	unit, err := svc.Create(ctx, CreateBusinessUnitInput{
		Name:  "Andean Region",
		Phone: "+57 1 555 0000",
		Email: "andes@example.com",
		Type:  "regional",
	})
	require.NoError(t, err)
	assert.Equal(t, "BU006", unit.Code)
	assert.Equal(t, entity.BusinessUnitStatusActive, unit.Status)
	assert.Zero(t, unit.ContractCount)

	_, err = svc.Create(ctx, CreateBusinessUnitInput{Name: "x", Phone: "1", Email: "x@example.com", Status: "archived"})
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)

	_, err = svc.Create(ctx, CreateBusinessUnitInput{Name: "  "})
	assert.ErrorIs(t, err, entity.ErrInvalidBusinessUnit)

	require.NoError(t, svc.Delete(ctx, "BU006"))
	assert.ErrorIs(t, svc.Delete(ctx, "BU006"), repository.ErrBusinessUnitNotFound)

	_, err = svc.Get(ctx, "BU006")
	assert.ErrorIs(t, err, repository.ErrBusinessUnitNotFound)
}

func TestBusinessUnitService_Catalogues(t *testing.T) {
	svc := newBusinessUnitService()

	types, err := svc.Types(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, types)

	statuses, err := svc.Statuses(context.Background())
	require.NoError(t, err)
	assert.Len(t, statuses, 3)
}

func newCustomerService() *CustomerService {
	return NewCustomerService(memory.NewCustomerRepository(memory.SeedCustomers(), memory.SeedCountries()), logging.Nop())
}

func TestCustomerService_Create(t *testing.T) {
	svc := newCustomerService()
	ctx := context.Background()

	customer, err := svc.Create(ctx, CreateCustomerInput{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@example.com",
		Country:   " US ",
		State:     "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", customer.ID)
	assert.Equal(t, "CUST003", customer.Identifier)
	assert.Equal(t, "US", customer.Country)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.Create(ctx, CreateCustomerInput{FirstName: "Ana"})
	assert.ErrorIs(t, err, entity.ErrInvalidCustomer)
}

func TestCustomerService_Update(t *testing.T) {
	svc := newCustomerService()
	ctx := context.Background()

	updated, err := svc.Update(ctx, "1", entity.CustomerUpdate{Phone: ptr("+1 555 0000")})
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0000", updated.Phone)
	assert.Equal(t, "John", updated.FirstName)

	_, err = svc.Update(ctx, "42", entity.CustomerUpdate{})
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCustomerService_Contracts(t *testing.T) {
	svc := newCustomerService()
	ctx := context.Background()

	contract, err := svc.AddContract(ctx, "2", entity.ContractServiceCOD)
	require.NoError(t, err)
	assert.Equal(t, "CNT003", contract.ContractNumber)

	customer, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, customer.Contracts, 2)

	_, err = svc.AddContract(ctx, "2", "barter")
	assert.ErrorIs(t, err, entity.ErrInvalidContractType)

	inactive := entity.CustomerStatusInactive
	updated, err := svc.UpdateContract(ctx, "2", contract.ID, entity.ContractUpdate{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusInactive, updated.Status)

	_, err = svc.UpdateContract(ctx, "2", "99", entity.ContractUpdate{Status: &inactive})
	assert.ErrorIs(t, err, repository.ErrContractNotFound)

	_, err = svc.UpdateContract(ctx, "42", "1", entity.ContractUpdate{})
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCustomerService_Countries(t *testing.T) {
	countries, err := newCustomerService().Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "US", countries[0].ID)
}
