package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer(" John ", "Doe", "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", c.FullName())
	assert.Equal(t, CustomerStatusActive, c.Status)
	assert.Empty(t, c.Contracts)

	_, err = NewCustomer("", "Doe", "john@example.com")
	assert.ErrorIs(t, err, ErrInvalidCustomer)
}

func TestCustomer_Apply(t *testing.T) {
	c, err := NewCustomer("John", "Doe", "john@example.com")
	require.NoError(t, err)

	inactive := CustomerStatusInactive
	require.NoError(t, c.Apply(CustomerUpdate{Phone: ptr("+57 300"), Status: &inactive}))
	assert.Equal(t, "+57 300", c.Phone)
	assert.Equal(t, CustomerStatusInactive, c.Status)
	assert.Equal(t, "John", c.FirstName)

	bad := CustomerStatus("archived")
	assert.ErrorIs(t, c.Apply(CustomerUpdate{Status: &bad}), ErrInvalidStatus)
}

func TestContract_Apply(t *testing.T) {
	ct := Contract{ServiceType: ContractServiceCash, Status: CustomerStatusActive}

	cod := ContractServiceCOD
	require.NoError(t, ct.Apply(ContractUpdate{ServiceType: &cod}))
	assert.Equal(t, ContractServiceCOD, ct.ServiceType)

	bogus := ContractServiceType("barter")
	assert.ErrorIs(t, ct.Apply(ContractUpdate{ServiceType: &bogus}), ErrInvalidContractType)
}

func TestCustomer_AddContract(t *testing.T) {
	c := &Customer{Contracts: []Contract{{ID: "2", ContractNumber: "CNT002"}}}

	ct, err := c.AddContract(ContractServiceCredit)
	require.NoError(t, err)
	assert.Equal(t, "3", ct.ID)
	assert.Equal(t, "CNT003", ct.ContractNumber)
	assert.Equal(t, CustomerStatusActive, ct.Status)
	assert.Len(t, c.Contracts, 2)

	_, err = c.AddContract("barter")
	assert.ErrorIs(t, err, ErrInvalidContractType)
	assert.Len(t, c.Contracts, 2)
}

func TestCustomer_UpdateContract(t *testing.T) {
	c := &Customer{}
	ct, err := c.AddContract(ContractServiceCash)
	require.NoError(t, err)
	assert.Equal(t, "CNT001", ct.ContractNumber)

	inactive := CustomerStatusInactive
	updated, found, err := c.UpdateContract(ct.ID, ContractUpdate{Status: &inactive})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, CustomerStatusInactive, updated.Status)
	assert.Equal(t, CustomerStatusInactive, c.Contracts[0].Status)

	_, found, err = c.UpdateContract("99", ContractUpdate{Status: &inactive})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCustomer_CloneIsDeep(t *testing.T) {
	c := &Customer{ID: "1", Contracts: []Contract{{ID: "1"}}}
	cp := c.Clone()
	cp.Contracts[0].ID = "changed"

	assert.Equal(t, "1", c.Contracts[0].ID)
}

func TestBusinessUnit(t *testing.T) {
	bu, err := NewBusinessUnit("Central Hub", "+1 555", "central@example.com", "hub", "")
	require.NoError(t, err)
	bu.Code = "BU003"

	assert.Equal(t, BusinessUnitStatusActive, bu.Status)
	assert.True(t, bu.Matches("CENTRAL"))
	assert.True(t, bu.Matches("bu003"))
	assert.True(t, bu.Matches(""))
	assert.False(t, bu.Matches("west"))

	_, err = NewBusinessUnit("", "+1", "x@example.com", "hub", "")
	assert.ErrorIs(t, err, ErrInvalidBusinessUnit)
}

func TestSession_IsExpired(t *testing.T) {
	s := NewSession(User{Username: "admin"}, time.Hour)

	assert.NotEmpty(t, s.Token)
	assert.False(t, s.IsExpired(time.Now()))
	assert.True(t, s.IsExpired(time.Now().Add(2*time.Hour)))
	assert.False(t, s.User.LastLogin.IsZero())
}
