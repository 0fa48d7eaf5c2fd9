package dto

import (
	"net/http"
	"strings"

	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"required,email"`
	Country   string `json:"country"`
	State     string `json:"state"`
	Address   string `json:"address"`
}

// Bind implements render.Binder.
func (req *CreateCustomerRequest) Bind(_ *http.Request) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	return nil
}

// ToInput converts the request into service input.
func (req *CreateCustomerRequest) ToInput() service.CreateCustomerInput {
	return service.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Country:   req.Country,
		State:     req.State,
		Address:   req.Address,
	}
}

// UpdateCustomerRequest is the body of PATCH /customers/{customerID}.
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Country   *string `json:"country"`
	State     *string `json:"state"`
	Address   *string `json:"address"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Bind implements render.Binder.
func (req *UpdateCustomerRequest) Bind(_ *http.Request) error {
	return nil
}

// ToCustomerUpdate converts the request into a domain update.
func (req *UpdateCustomerRequest) ToCustomerUpdate() entity.CustomerUpdate {
	u := entity.CustomerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Country:   req.Country,
		State:     req.State,
		Address:   req.Address,
	}
	if req.Status != nil {
		s := entity.CustomerStatus(*req.Status)
		u.Status = &s
	}
	return u
}

// AddContractRequest is the body of POST /customers/{customerID}/contracts.
type AddContractRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=cash cod credit"`
}

// Bind implements render.Binder.
func (req *AddContractRequest) Bind(_ *http.Request) error {
	req.ServiceType = strings.ToLower(strings.TrimSpace(req.ServiceType))
	return nil
}

// UpdateContractRequest is the body of PATCH .../contracts/{contractID}.
type UpdateContractRequest struct {
	ServiceType *string `json:"service_type" validate:"omitempty,oneof=cash cod credit"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Bind implements render.Binder.
func (req *UpdateContractRequest) Bind(_ *http.Request) error {
	return nil
}

// ToContractUpdate converts the request into a domain update.
func (req *UpdateContractRequest) ToContractUpdate() entity.ContractUpdate {
	var u entity.ContractUpdate
	if req.ServiceType != nil {
		t := entity.ContractServiceType(*req.ServiceType)
		u.ServiceType = &t
	}
	if req.Status != nil {
		s := entity.CustomerStatus(*req.Status)
		u.Status = &s
	}
	return u
}
