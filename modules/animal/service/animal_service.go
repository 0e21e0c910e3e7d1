package service

import (
	"context"
	"strings"

	"vetcare-api/core/errors"
	"vetcare-api/modules/animal/entity"
	"vetcare-api/modules/animal/repository"
	authentity "vetcare-api/modules/auth/entity"
)

// AnimalServiceInterface defines the service contract.
type AnimalServiceInterface interface {
	FilterMembers(ctx context.Context, role authentity.UserRole, category *entity.Category, search string) ([]entity.Member, *errors.AppError)
	GetMember(ctx context.Context, slug string) (*entity.Member, *errors.AppError)
	GetAnimal(ctx context.Context, id string) (*entity.Animal, *errors.AppError)
	FilterAnimals(ctx context.Context, opts entity.FilterOptions) ([]entity.Animal, *errors.AppError)
}

type AnimalService struct {
	catalog repository.CatalogRepositoryInterface
}

func NewAnimalService(catalog repository.CatalogRepositoryInterface) AnimalServiceInterface {
	return &AnimalService{catalog: catalog}
}

// FilterMembers lists catalog groups visible to the actor. Caretakers are
// pinned to their assigned category; other roles may narrow by category.
// The name search is case-insensitive substring match in both cases.
func (s *AnimalService) FilterMembers(ctx context.Context, role authentity.UserRole, category *entity.Category, search string) ([]entity.Member, *errors.AppError) {
	members, err := s.catalog.ListMembers(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list members", err)
	}

	if assigned, pinned := entity.CategoryForRole(role); pinned {
		category = &assigned
	}

	needle := strings.ToLower(search)
	out := make([]entity.Member, 0, len(members))
	for _, m := range members {
		if category != nil && m.Category != *category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *AnimalService) GetMember(ctx context.Context, slug string) (*entity.Member, *errors.AppError) {
	m, err := s.catalog.GetMemberBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get member", err)
	}
	if m == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Member not found", nil)
	}
	return m, nil
}

func (s *AnimalService) GetAnimal(ctx context.Context, id string) (*entity.Animal, *errors.AppError) {
	a, err := s.catalog.GetAnimalByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get animal", err)
	}
	if a == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Animal not found", nil)
	}
	return a, nil
}

// FilterAnimals applies the detail-filter options over the whole catalog.
func (s *AnimalService) FilterAnimals(ctx context.Context, opts entity.FilterOptions) ([]entity.Animal, *errors.AppError) {
	if opts.MaxAgeYears > 0 && opts.MinAgeYears > opts.MaxAgeYears {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Minimum age exceeds maximum age", nil)
	}
	for _, hs := range opts.HealthStatus {
		if !hs.IsValid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown health status filter", nil)
		}
	}

	animals, err := s.catalog.ListAnimals(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list animals", err)
	}

	needle := strings.ToLower(opts.Name)
	out := make([]entity.Animal, 0, len(animals))
	for _, a := range animals {
		if needle != "" && !strings.Contains(strings.ToLower(a.Name), needle) {
			continue
		}
		if a.AgeYears < opts.MinAgeYears {
			continue
		}
		if opts.MaxAgeYears > 0 && a.AgeYears > opts.MaxAgeYears {
			continue
		}
		if len(opts.HealthStatus) > 0 && !containsStatus(opts.HealthStatus, a.HealthStatus) {
			continue
		}
		if opts.Gender != nil && a.Gender != *opts.Gender {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func containsStatus(list []entity.HealthStatus, s entity.HealthStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
