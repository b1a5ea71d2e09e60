package service

import (
	"context"
	"errors"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/repository"
	"planiftchop/internal/shopping"

	"github.com/google/uuid"
)

// ShoppingService derives the purchase list from the meal calendar and
// the pantry: demand aggregated across unprepared plans, netted against
// stock, grouped by category.
type ShoppingService interface {
	Generate(ctx context.Context, userID string, filter dto.ShoppingListFilter) (*dto.ShoppingListResponse, error)
	// Grouped returns the raw category → entries map for exports
	// (PDF, XLSX) and for the emailed report. A nil map with a nil
	// error means no unprepared meals were planned in the range.
	Grouped(ctx context.Context, userID, start, end string) (map[string][]shopping.Entry, error)
}

type shoppingService struct {
	planRepo  repository.PlanRepository
	dishRepo  repository.DishRepository
	stockRepo repository.StockRepository
}

func NewShoppingService(
	planRepo repository.PlanRepository,
	dishRepo repository.DishRepository,
	stockRepo repository.StockRepository,
) ShoppingService {
	return &shoppingService{planRepo: planRepo, dishRepo: dishRepo, stockRepo: stockRepo}
}

func (s *shoppingService) Generate(ctx context.Context, userID string, filter dto.ShoppingListFilter) (*dto.ShoppingListResponse, error) {
	start, end := resolveRange(filter.Start, filter.End)

	grouped, err := s.Grouped(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.ShoppingListResponse{Start: start, End: end, Categories: []dto.ShoppingCategoryResponse{}}

	if grouped == nil {
		resp.Message = "Aucun repas non préparé planifié pour cette période."
		return resp, nil
	}
	if len(grouped) == 0 {
		resp.Message = shopping.NothingNeeded
		return resp, nil
	}

	for _, category := range shopping.SortedCategories(grouped) {
		resp.Categories = append(resp.Categories, dto.ShoppingCategoryResponse{
			Category: category,
			Items:    shopping.SortedEntries(grouped[category]),
		})
	}
	return resp, nil
}

func (s *shoppingService) Grouped(ctx context.Context, userID, start, end string) (map[string][]shopping.Entry, error) {
	plans, err := s.planRepo.ListByDateRange(ctx, userID, start, end, true)
	if err != nil {
		return nil, err
	}

	dishes, err := s.dishRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	dishMap := make(map[uuid.UUID]*model.Dish, len(dishes))
	for i := range dishes {
		dishMap[dishes[i].ID] = &dishes[i]
	}

	demand, err := shopping.AggregateDemand(plans, dishMap)
	if err != nil {
		if errors.Is(err, shopping.ErrNoUnpreparedMeals) {
			return nil, nil
		}
		return nil, err
	}

	stock, err := s.stockRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return shopping.ComputeShoppingList(demand, stock), nil
}
