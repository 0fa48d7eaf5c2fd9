package memory

import (
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// Sample data loaded at startup so the console has something to show.

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedBusinessUnits returns the sample business units.
func SeedBusinessUnits() []entity.BusinessUnit {
	return []entity.BusinessUnit{
		{Code: "BU001", Name: "Northeast Operations", Phone: "+1 (555) 123-4567", Email: "northeast@example.com", ContractCount: 15, Type: "regional", Status: entity.BusinessUnitStatusActive, CreatedAt: mustTime("2024-01-15T10:00:00Z")},
		{Code: "BU002", Name: "West Coast Division", Phone: "+1 (555) 987-6543", Email: "westcoast@example.com", ContractCount: 23, Type: "regional", Status: entity.BusinessUnitStatusActive, CreatedAt: mustTime("2024-02-01T09:30:00Z")},
		{Code: "BU003", Name: "Central Hub", Phone: "+1 (555) 456-7890", Email: "central@example.com", ContractCount: 18, Type: "hub", Status: entity.BusinessUnitStatusActive, CreatedAt: mustTime("2024-02-15T14:20:00Z")},
		{Code: "BU004", Name: "International Division", Phone: "+1 (555) 789-0123", Email: "international@example.com", ContractCount: 31, Type: "international", Status: entity.BusinessUnitStatusActive, CreatedAt: mustTime("2024-03-01T11:45:00Z")},
		{Code: "BU005", Name: "Express Services", Phone: "+1 (555) 234-5678", Email: "express@example.com", ContractCount: 12, Type: "service", Status: entity.BusinessUnitStatusInactive, CreatedAt: mustTime("2024-03-10T16:15:00Z")},
	}
}

// BusinessUnitTypes returns the unit type catalogue.
func BusinessUnitTypes() []entity.CatalogEntry {
	return []entity.CatalogEntry{
		{ID: "regional", Name: "Regional Office"},
		{ID: "hub", Name: "Distribution Hub"},
		{ID: "international", Name: "International Division"},
		{ID: "service", Name: "Service Center"},
	}
}

// BusinessUnitStatuses returns the unit status catalogue.
func BusinessUnitStatuses() []entity.CatalogEntry {
	return []entity.CatalogEntry{
		{ID: string(entity.BusinessUnitStatusActive), Name: "Active"},
		{ID: string(entity.BusinessUnitStatusInactive), Name: "Inactive"},
		{ID: string(entity.BusinessUnitStatusPending), Name: "Pending Approval"},
	}
}

// SeedCustomers returns the sample customers.
func SeedCustomers() []entity.Customer {
	return []entity.Customer{
		{
			ID: "1", Identifier: "CUST001", FirstName: "John", LastName: "Doe",
			Phone: "+1 (555) 123-4567", Email: "john.doe@example.com",
			Country: "US", State: "NY", Address: "123 Main St, New York, NY 10001",
			Contracts: []entity.Contract{
				{ID: "1", ContractNumber: "CNT001", ServiceType: entity.ContractServiceCredit, CreatedAt: mustTime("2024-01-15T10:00:00Z"), Status: entity.CustomerStatusActive},
			},
			CreatedAt: mustTime("2024-01-15T10:00:00Z"),
			Status:    entity.CustomerStatusActive,
		},
		{
			ID: "2", Identifier: "CUST002", FirstName: "Jane", LastName: "Smith",
			Phone: "+1 (555) 987-6543", Email: "jane.smith@example.com",
			Country: "US", State: "CA", Address: "456 Oak Ave, Los Angeles, CA 90001",
			Contracts: []entity.Contract{
				{ID: "2", ContractNumber: "CNT002", ServiceType: entity.ContractServiceCash, CreatedAt: mustTime("2024-02-01T09:30:00Z"), Status: entity.CustomerStatusActive},
			},
			CreatedAt: mustTime("2024-02-01T09:30:00Z"),
			Status:    entity.CustomerStatusActive,
		},
	}
}

// SeedCountries returns the country catalogue.
func SeedCountries() []entity.Country {
	return []entity.Country{
		{
			ID: "US", Name: "United States",
			States: []entity.State{
				{ID: "NY", Name: "New York", CountryID: "US"},
				{ID: "CA", Name: "California", CountryID: "US"},
				{ID: "TX", Name: "Texas", CountryID: "US"},
			},
		},
		{
			ID: "CA", Name: "Canada",
			States: []entity.State{
				{ID: "ON", Name: "Ontario", CountryID: "CA"},
				{ID: "BC", Name: "British Columbia", CountryID: "CA"},
				{ID: "QC", Name: "Quebec", CountryID: "CA"},
			},
		},
	}
}
