package entity

import (
	"strings"
	"time"
)

// BusinessUnitStatus is the lifecycle status of a business unit.
type BusinessUnitStatus string

const (
	BusinessUnitStatusActive   BusinessUnitStatus = "active"
	BusinessUnitStatusInactive BusinessUnitStatus = "inactive"
	BusinessUnitStatusPending  BusinessUnitStatus = "pending"
)

// BusinessUnit is an operating division of the shipping business.
type BusinessUnit struct {
	// Code is assigned by the repository on creation (e.g. "BU006").
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Email         string             `json:"email"`
	ContractCount int                `json:"contract_count"`
	Type          string             `json:"type"`
	Status        BusinessUnitStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NewBusinessUnit creates a business unit with no contracts.
// An empty status defaults to active.
func NewBusinessUnit(name, phone, email, unitType string, status BusinessUnitStatus) (*BusinessUnit, error) {
	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)
	if name == "" || phone == "" || email == "" {
		return nil, ErrInvalidBusinessUnit
	}
	if status == "" {
		status = BusinessUnitStatusActive
	}

	return &BusinessUnit{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Type:      unitType,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Matches reports whether term occurs, case-insensitively, in the unit's
// name, code or email.
func (b *BusinessUnit) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), term) ||
		strings.Contains(strings.ToLower(b.Code), term) ||
		strings.Contains(strings.ToLower(b.Email), term)
}

// CatalogEntry is an id/name pair used for select lists.
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
