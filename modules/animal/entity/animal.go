package entity

import (
	"vetcare-api/modules/auth/entity"
)

// Category is the closed set of animal groups the clinic manages. Each
// caretaker role is pinned to exactly one category.
type Category string

const (
	CategoryAvian   Category = "avian"
	CategoryMammal  Category = "mammal"
	CategoryReptile Category = "reptile"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryAvian, CategoryMammal, CategoryReptile:
		return true
	}
	return false
}

// CategoryForRole maps a caretaker role to its assigned category. The second
// return is false for non-caretaker roles, which see every category.
func CategoryForRole(role entity.UserRole) (Category, bool) {
	switch role {
	case entity.RoleCaretakerA:
		return CategoryAvian, true
	case entity.RoleCaretakerB:
		return CategoryMammal, true
	case entity.RoleCaretakerC:
		return CategoryReptile, true
	}
	return "", false
}

type HealthStatus string

const (
	HealthStatusHealthy        HealthStatus = "healthy"
	HealthStatusSick           HealthStatus = "sick"
	HealthStatusUnderTreatment HealthStatus = "under treatment"
)

func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthStatusHealthy, HealthStatusSick, HealthStatusUnderTreatment:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Animal is a single catalog animal.
type Animal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	UniqueName   string       `json:"unique_name,omitempty"`
	Slug         string       `json:"slug"`
	Species      string       `json:"species"`
	Type         Category     `json:"type"`
	HealthStatus HealthStatus `json:"health_status"`
	ImageURI     string       `json:"image_uri,omitempty"`
	Gender       Gender       `json:"gender"`
	AgeYears     int          `json:"age_years"`
	Details      string       `json:"details,omitempty"`
}

// Member is a named group of animals of one species (the catalog's unit of
// husbandry, e.g. "Bengal Tigers").
type Member struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Category   Category `json:"category"`
	TotalHeads int      `json:"total_heads"`
	ImageURL   string   `json:"image_url,omitempty"`
	Animals    []Animal `json:"animals"`
}

// FilterOptions are the animal-list filter knobs.
type FilterOptions struct {
	Name         string
	MinAgeYears  int
	MaxAgeYears  int // 0 means unbounded
	HealthStatus []HealthStatus
	Gender       *Gender
}
