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

// ErrStockItemNotFound is returned when the requested stock item does not exist.
var ErrStockItemNotFound = errors.New("article de stock introuvable")

// StockService defines the business logic contract for pantry stock.
type StockService interface {
	Create(ctx context.Context, userID string, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error)
	List(ctx context.Context, userID string) ([]dto.StockItemResponse, error)
	// Alerts returns only the items at or below the low-stock threshold.
	Alerts(ctx context.Context, userID string) ([]dto.StockItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStockItemRequest) (*dto.StockItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type stockService struct {
	repo repository.StockRepository
}

func NewStockService(repo repository.StockRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Create(ctx context.Context, userID string, req dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Autres"
	}
	item := &model.StockItem{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Unit:     strings.TrimSpace(req.Unit),
		Category: category,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return stockToResponse(item), nil
}

func (s *stockService) List(ctx context.Context, userID string) ([]dto.StockItemResponse, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *stockToResponse(&items[i]))
	}
	return out, nil
}

func (s *stockService) Alerts(ctx context.Context, userID string) ([]dto.StockItemResponse, error) {
	items, err := s.repo.ListLow(ctx, userID, report.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *stockToResponse(&items[i]))
	}
	return out, nil
}

func (s *stockService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockItemNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			category = "Autres"
		}
		item.Category = category
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return stockToResponse(item), nil
}

func (s *stockService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStockItemNotFound
		}
		return err
	}
	return nil
}

func stockToResponse(item *model.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Category: item.Category,
		Status:   report.StockStatus(item.Quantity),
	}
}
