package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type mealOptionsRepo struct {
	q *gen.Queries
}

func (r *mealOptionsRepo) Create(ctx context.Context, m *domain.MealOption) error {
	return mapConstraint(r.q.CreateMealOption(ctx, gen.CreateMealOptionParams{
		ID:          m.ID,
		CourseType:  string(m.CourseType),
		Name:        m.Name,
		Description: mapOptionalString(m.Description),
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}))
}

func (r *mealOptionsRepo) Update(ctx context.Context, m *domain.MealOption) error {
	return mapAffected(r.q.UpdateMealOption(ctx, gen.UpdateMealOptionParams{
		CourseType:  string(m.CourseType),
		Name:        m.Name,
		Description: mapOptionalString(m.Description),
		IsAvailable: m.IsAvailable,
		UpdatedAt:   m.UpdatedAt.UTC(),
		ID:          m.ID,
	}))
}

func (r *mealOptionsRepo) FindByID(ctx context.Context, id string) (*domain.MealOption, error) {
	row, err := r.q.GetMealOptionByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapMealOption(row), nil
}

func (r *mealOptionsRepo) FindByCourseAndName(ctx context.Context, course domain.CourseType, name string) (*domain.MealOption, error) {
	row, err := r.q.GetMealOptionByCourseAndName(ctx, gen.GetMealOptionByCourseAndNameParams{
		CourseType: string(course),
		Name:       name,
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapMealOption(row), nil
}

func (r *mealOptionsRepo) FindAll(ctx context.Context, onlyAvailable bool) ([]*domain.MealOption, error) {
	var (
		rows []gen.MealOption
		err  error
	)
	if onlyAvailable {
		rows, err = r.q.ListAvailableMealOptions(ctx)
	} else {
		rows, err = r.q.ListMealOptions(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*domain.MealOption, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMealOption(row))
	}
	return out, nil
}

func (r *mealOptionsRepo) Delete(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteMealOption(ctx, id))
}

func mapMealOption(row gen.MealOption) *domain.MealOption {
	return domain.ReconstituteMealOption(
		row.ID,
		domain.CourseType(row.CourseType),
		row.Name,
		mapNullStringPtr(row.Description),
		row.IsAvailable,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}
