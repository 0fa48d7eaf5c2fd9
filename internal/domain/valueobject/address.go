package valueobject

import "strings"

// Address is a postal and contact address used for the sender and the
// recipient of a shipment. Every field is optional at the type level;
// required fields are enforced when a shipment is submitted.
type Address struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// IsEmpty reports whether no field of the address has been filled in.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Normalize returns a copy with surrounding whitespace trimmed from every field.
func (a Address) Normalize() Address {
	return Address{
		Name:    strings.TrimSpace(a.Name),
		Company: strings.TrimSpace(a.Company),
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
		Country: strings.TrimSpace(a.Country),
		Phone:   strings.TrimSpace(a.Phone),
		Email:   strings.TrimSpace(a.Email),
	}
}

// Summary returns a one-line "City, Country" label for logs and listings.
func (a Address) Summary() string {
	parts := make([]string, 0, 2)
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.Country != "" {
		parts = append(parts, a.Country)
	}
	return strings.Join(parts, ", ")
}
