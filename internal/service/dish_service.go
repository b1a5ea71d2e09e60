package service

import (
	"context"
	"errors"
	"strings"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDishNotFound is returned when the requested dish does not exist.
var ErrDishNotFound = errors.New("plat introuvable")

// DishService defines the business logic contract for dishes and their recipes.
type DishService interface {
	Create(ctx context.Context, userID string, req dto.CreateDishRequest) (*dto.DishResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DishResponse, error)
	List(ctx context.Context, userID string) ([]dto.DishResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateDishRequest) (*dto.DishResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dishService struct {
	repo repository.DishRepository
}

func NewDishService(repo repository.DishRepository) DishService {
	return &dishService{repo: repo}
}

func (s *dishService) Create(ctx context.Context, userID string, req dto.CreateDishRequest) (*dto.DishResponse, error) {
	course := strings.TrimSpace(req.Course)
	if course == "" {
		course = model.MealDinner
	}
	if model.MealTypeRank(course) == model.UnknownMealRank {
		return nil, errors.New("type de repas inconnu : " + course)
	}

	servings := req.BaseServings
	if servings <= 0 {
		servings = 1
	}

	dish := &model.Dish{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Course:       course,
		BaseServings: servings,
		Ingredients:  toIngredientModels(req.Ingredients),
	}
	if err := s.repo.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dishToResponse(dish), nil
}

func (s *dishService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DishResponse, error) {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return dishToResponse(dish), nil
}

func (s *dishService) List(ctx context.Context, userID string) ([]dto.DishResponse, error) {
	dishes, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		out = append(out, *dishToResponse(&dishes[i]))
	}
	return out, nil
}

func (s *dishService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateDishRequest) (*dto.DishResponse, error) {
	dish, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		dish.Name = strings.TrimSpace(*req.Name)
	}
	if req.Course != nil {
		course := strings.TrimSpace(*req.Course)
		if model.MealTypeRank(course) == model.UnknownMealRank {
			return nil, errors.New("type de repas inconnu : " + course)
		}
		dish.Course = course
	}
	if req.BaseServings != nil && *req.BaseServings > 0 {
		dish.BaseServings = *req.BaseServings
	}
	if req.Ingredients != nil {
		dish.Ingredients = toIngredientModels(req.Ingredients)
	}

	if err := s.repo.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dishToResponse(dish), nil
}

func (s *dishService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	return nil
}

func toIngredientModels(reqs []dto.IngredientRequest) []model.DishIngredient {
	out := make([]model.DishIngredient, 0, len(reqs))
	for _, ing := range reqs {
		category := strings.TrimSpace(ing.Category)
		if category == "" {
			category = "Autres"
		}
		out = append(out, model.DishIngredient{
			Name:     strings.TrimSpace(ing.Name),
			Quantity: ing.Quantity,
			Unit:     strings.TrimSpace(ing.Unit),
			Category: category,
			Price:    ing.Price,
		})
	}
	return out
}

func dishToResponse(d *model.Dish) *dto.DishResponse {
	ings := make([]dto.IngredientResponse, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ings = append(ings, dto.IngredientResponse{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: ing.Category,
			Price:    ing.Price,
		})
	}
	return &dto.DishResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		Course:       d.Course,
		BaseServings: d.BaseServings,
		Ingredients:  ings,
	}
}
