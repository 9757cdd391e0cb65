package sqlite

import (
	"context"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite/gen"
)

type mealSelectionsRepo struct {
	q *gen.Queries
}

func (r *mealSelectionsRepo) Save(ctx context.Context, s domain.MealSelection) error {
	return mapConstraint(r.q.CreateMealSelection(ctx, gen.CreateMealSelectionParams{
		ID:           s.ID,
		GuestID:      s.GuestID,
		MealOptionID: s.MealOptionID,
		CourseType:   string(s.CourseType),
		CreatedAt:    s.CreatedAt.UTC(),
	}))
}

func (r *mealSelectionsRepo) SaveMany(ctx context.Context, selections []domain.MealSelection) error {
	for _, s := range selections {
		if err := r.Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *mealSelectionsRepo) FindByID(ctx context.Context, id string) (domain.MealSelection, error) {
	row, err := r.q.GetMealSelectionByID(ctx, id)
	if err != nil {
		return domain.MealSelection{}, mapNotFound(err)
	}
	return mapMealSelection(row), nil
}

func (r *mealSelectionsRepo) FindByGuestID(ctx context.Context, guestID string) ([]domain.MealSelection, error) {
	rows, err := r.q.ListMealSelectionsByGuestID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return mapMealSelections(rows), nil
}

func (r *mealSelectionsRepo) FindByInviteID(ctx context.Context, inviteID string) ([]domain.MealSelection, error) {
	rows, err := r.q.ListMealSelectionsByInviteID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	return mapMealSelections(rows), nil
}

func (r *mealSelectionsRepo) DeleteByGuestID(ctx context.Context, guestID string) error {
	_, err := r.q.DeleteMealSelectionsByGuestID(ctx, guestID)
	return err
}

func (r *mealSelectionsRepo) CountByOption(ctx context.Context) ([]store.MealCount, error) {
	rows, err := r.q.CountMealSelectionsByOption(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]store.MealCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.MealCount{
			MealOptionID: row.MealOptionID,
			Name:         row.Name,
			CourseType:   domain.CourseType(row.CourseType),
			Count:        int(row.SelectionCount),
		})
	}
	return out, nil
}

func mapMealSelections(rows []gen.MealSelection) []domain.MealSelection {
	out := make([]domain.MealSelection, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMealSelection(row))
	}
	return out
}

func mapMealSelection(row gen.MealSelection) domain.MealSelection {
	return domain.ReconstituteMealSelection(
		row.ID,
		row.GuestID,
		row.MealOptionID,
		domain.CourseType(row.CourseType),
		row.CreatedAt.UTC(),
	)
}
