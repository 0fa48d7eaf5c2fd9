package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CustomerStatus is the status shared by customers and their contracts.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid reports whether s is a known status.
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// ContractServiceType is the payment arrangement of a contract.
type ContractServiceType string

const (
	ContractServiceCash   ContractServiceType = "cash"
	ContractServiceCOD    ContractServiceType = "cod"
	ContractServiceCredit ContractServiceType = "credit"
)

// IsValid reports whether t is a known contract service type.
func (t ContractServiceType) IsValid() bool {
	switch t {
	case ContractServiceCash, ContractServiceCOD, ContractServiceCredit:
		return true
	}
	return false
}

// Contract is a service agreement held by a customer.
type Contract struct {
	ID             string              `json:"id"`
	ContractNumber string              `json:"contract_number"`
	ServiceType    ContractServiceType `json:"service_type"`
	CreatedAt      time.Time           `json:"created_at"`
	Status         CustomerStatus      `json:"status"`
}

// Customer is a shipping customer and its contracts.
type Customer struct {
	ID         string         `json:"id"`
	Identifier string         `json:"identifier"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	Country    string         `json:"country"`
	State      string         `json:"state"`
	Address    string         `json:"address"`
	Contracts  []Contract     `json:"contracts"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     CustomerStatus `json:"status"`
}

// NewCustomer creates an active customer without contracts. ID and
// Identifier are assigned by the repository.
func NewCustomer(firstName, lastName, email string) (*Customer, error) {
	firstName, lastName, email = strings.TrimSpace(firstName), strings.TrimSpace(lastName), strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" {
		return nil, ErrInvalidCustomer
	}
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Contracts: make([]Contract, 0),
		CreatedAt: time.Now().UTC(),
		Status:    CustomerStatusActive,
	}, nil
}

// FullName returns "First Last".
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CustomerUpdate carries a partial customer update.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Country   *string
	State     *string
	Address   *string
	Status    *CustomerStatus
}

// Apply merges the update into the customer.
func (c *Customer) Apply(u CustomerUpdate) error {
	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}
	setIfPresent(&c.FirstName, u.FirstName)
	setIfPresent(&c.LastName, u.LastName)
	setIfPresent(&c.Phone, u.Phone)
	setIfPresent(&c.Email, u.Email)
	setIfPresent(&c.Country, u.Country)
	setIfPresent(&c.State, u.State)
	setIfPresent(&c.Address, u.Address)
	if u.Status != nil {
		c.Status = *u.Status
	}
	return nil
}

// ContractUpdate carries a partial contract update.
type ContractUpdate struct {
	ServiceType *ContractServiceType
	Status      *CustomerStatus
}

// Apply merges the update into the contract.
func (ct *Contract) Apply(u ContractUpdate) error {
	if u.ServiceType != nil && !u.ServiceType.IsValid() {
		return ErrInvalidContractType
	}
	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}
	if u.ServiceType != nil {
		ct.ServiceType = *u.ServiceType
	}
	if u.Status != nil {
		ct.Status = *u.Status
	}
	return nil
}

// AddContract appends an active contract of the given type. Contract IDs
// and numbers continue after the highest number already held by the
// customer.
func (c *Customer) AddContract(serviceType ContractServiceType) (Contract, error) {
	if !serviceType.IsValid() {
		return Contract{}, ErrInvalidContractType
	}

	next := 1
	for _, ct := range c.Contracts {
		if n, err := strconv.Atoi(ct.ID); err == nil && n >= next {
			next = n + 1
		}
	}

	contract := Contract{
		ID:             strconv.Itoa(next),
		ContractNumber: fmt.Sprintf("CNT%03d", next),
		ServiceType:    serviceType,
		CreatedAt:      time.Now().UTC(),
		Status:         CustomerStatusActive,
	}
	c.Contracts = append(c.Contracts, contract)
	return contract, nil
}

// UpdateContract applies u to the contract with the given id.
//
// Returns:
//   - Contract: the updated contract
//   - bool: false if the customer holds no such contract
//   - error: validation error from Contract.Apply
func (c *Customer) UpdateContract(id string, u ContractUpdate) (Contract, bool, error) {
	for i := range c.Contracts {
		if c.Contracts[i].ID != id {
			continue
		}
		if err := c.Contracts[i].Apply(u); err != nil {
			return Contract{}, true, err
		}
		return c.Contracts[i], true, nil
	}
	return Contract{}, false, nil
}

// Clone returns a deep copy of the customer, contracts included.
func (c *Customer) Clone() *Customer {
	out := *c
	out.Contracts = append(make([]Contract, 0, len(c.Contracts)), c.Contracts...)
	return &out
}

// Country is a destination country and its states.
type Country struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	States []State `json:"states"`
}

// State is a first-level subdivision of a country.
type State struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CountryID string `json:"country_id"`
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
