package service

import (
	"context"
	"errors"
	"strings"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/report"
	"planiftchop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPlanNotFound is returned when the requested meal plan does not exist.
var ErrPlanNotFound = errors.New("repas planifié introuvable")

// PlanService defines the business logic contract for the meal calendar.
type PlanService interface {
	Create(ctx context.Context, userID string, req dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error)
	// ListRange returns the plans in [start, end], dish names resolved.
	// Empty bounds default to the current week (Monday through Sunday).
	ListRange(ctx context.Context, userID string, filter dto.MealPlanFilter) ([]dto.MealPlanResponse, error)
	SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) (*dto.MealPlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type planService struct {
	repo     repository.PlanRepository
	dishRepo repository.DishRepository
}

func NewPlanService(repo repository.PlanRepository, dishRepo repository.DishRepository) PlanService {
	return &planService{repo: repo, dishRepo: dishRepo}
}

func (s *planService) Create(ctx context.Context, userID string, req dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error) {
	mealType := strings.TrimSpace(req.MealType)
	if model.MealTypeRank(mealType) == model.UnknownMealRank {
		return nil, errors.New("type de repas inconnu : " + mealType)
	}

	dishID, err := uuid.Parse(req.DishID)
	if err != nil {
		return nil, errors.New("dish_id invalide")
	}
	dish, err := s.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	plan := &model.MealPlan{
		UserID:          userID,
		Date:            req.Date,
		MealType:        mealType,
		DishID:          dishID,
		ServingsPlanned: req.ServingsPlanned,
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return planToResponse(plan, dish.Name), nil
}

func (s *planService) ListRange(ctx context.Context, userID string, filter dto.MealPlanFilter) ([]dto.MealPlanResponse, error) {
	start, end := resolveRange(filter.Start, filter.End)

	plans, err := s.repo.ListByDateRange(ctx, userID, start, end, false)
	if err != nil {
		return nil, err
	}

	dishes, err := s.dishRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(dishes))
	for i := range dishes {
		names[dishes[i].ID] = dishes[i].Name
	}

	out := make([]dto.MealPlanResponse, 0, len(plans))
	for i := range plans {
		name, ok := names[plans[i].DishID]
		if !ok {
			name = report.DeletedDishName
		}
		out = append(out, *planToResponse(&plans[i], name))
	}
	return out, nil
}

func (s *planService) SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) (*dto.MealPlanResponse, error) {
	if err := s.repo.SetPrepared(ctx, id, prepared); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := report.DeletedDishName
	if dish, err := s.dishRepo.FindByID(ctx, plan.DishID); err == nil {
		name = dish.Name
	}
	return planToResponse(plan, name), nil
}

func (s *planService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// resolveRange fills missing bounds with the current week.
func resolveRange(start, end string) (string, string) {
	if start == "" || end == "" {
		weekStart, weekEnd := report.WeekRange(timeNow())
		if start == "" {
			start = weekStart
		}
		if end == "" {
			end = weekEnd
		}
	}
	return start, end
}

func planToResponse(p *model.MealPlan, dishName string) *dto.MealPlanResponse {
	return &dto.MealPlanResponse{
		ID:              p.ID.String(),
		Date:            p.Date,
		MealType:        p.MealType,
		DishID:          p.DishID.String(),
		DishName:        dishName,
		ServingsPlanned: p.ServingsPlanned,
		Prepared:        p.Prepared,
	}
}
