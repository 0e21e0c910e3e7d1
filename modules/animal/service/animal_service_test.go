package service_test

import (
	"context"
	"testing"

	"vetcare-api/core/errors"
	"vetcare-api/modules/animal/entity"
	"vetcare-api/modules/animal/repository"
	"vetcare-api/modules/animal/service"
	authentity "vetcare-api/modules/auth/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *repository.CatalogRepository {
	return repository.NewCatalogRepository([]entity.Member{
		{
			ID: "1", Name: "Fischer's Lovebirds", Category: entity.CategoryAvian, TotalHeads: 2,
			Animals: []entity.Animal{
				{ID: "1-1", Name: "Lovebird", UniqueName: "Kiwi", Type: entity.CategoryAvian, HealthStatus: entity.HealthStatusHealthy, Gender: entity.GenderFemale, AgeYears: 2},
				{ID: "1-2", Name: "Lovebird", UniqueName: "Mango", Type: entity.CategoryAvian, HealthStatus: entity.HealthStatusSick, Gender: entity.GenderMale, AgeYears: 3},
			},
		},
		{
			ID: "2", Name: "Bengal Tigers", Category: entity.CategoryMammal, TotalHeads: 1,
			Animals: []entity.Animal{
				{ID: "2-1", Name: "Tiger", UniqueName: "Raja", Type: entity.CategoryMammal, HealthStatus: entity.HealthStatusHealthy, Gender: entity.GenderMale, AgeYears: 7},
			},
		},
	})
}

func TestFilterMembersCaretakerPinning(t *testing.T) {
	svc := service.NewAnimalService(newCatalog())
	mammal := entity.CategoryMammal

	// caretakerA is pinned to avian even when asking for mammals.
	got, appErr := svc.FilterMembers(context.Background(), authentity.RoleCaretakerA, &mammal, "")
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, entity.CategoryAvian, got[0].Category)

	// head vet sees the requested category.
	got, appErr = svc.FilterMembers(context.Background(), authentity.RoleHeadVet, &mammal, "")
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, "Bengal Tigers", got[0].Name)
}

func TestFilterMembersSearch(t *testing.T) {
	svc := service.NewAnimalService(newCatalog())

	got, appErr := svc.FilterMembers(context.Background(), authentity.RoleHeadVet, nil, "tiger")
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, "Bengal Tigers", got[0].Name)
}

func TestGetMemberBySlug(t *testing.T) {
	svc := service.NewAnimalService(newCatalog())

	got, appErr := svc.GetMember(context.Background(), "bengal-tigers")
	require.Nil(t, appErr)
	assert.Equal(t, "2", got.ID)

	_, appErr = svc.GetMember(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestFilterAnimals(t *testing.T) {
	svc := service.NewAnimalService(newCatalog())
	male := entity.GenderMale

	tests := []struct {
		name string
		opts entity.FilterOptions
		want []string
	}{
		{
			name: "by health status",
			opts: entity.FilterOptions{HealthStatus: []entity.HealthStatus{entity.HealthStatusSick}},
			want: []string{"1-2"},
		},
		{
			name: "by age range",
			opts: entity.FilterOptions{MinAgeYears: 3, MaxAgeYears: 10},
			want: []string{"1-2", "2-1"},
		},
		{
			name: "by gender and name",
			opts: entity.FilterOptions{Name: "lovebird", Gender: &male},
			want: []string{"1-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, appErr := svc.FilterAnimals(context.Background(), tt.opts)
			require.Nil(t, appErr)

			var ids []string
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestFilterAnimalsBadRange(t *testing.T) {
	svc := service.NewAnimalService(newCatalog())

	_, appErr := svc.FilterAnimals(context.Background(), entity.FilterOptions{MinAgeYears: 5, MaxAgeYears: 2})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
