package service

import (
	"context"
	"testing"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/shopping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPlanRepo is an in-memory PlanRepository for testing.
type stubPlanRepo struct {
	plans map[uuid.UUID]*model.MealPlan
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[uuid.UUID]*model.MealPlan)}
}

func (r *stubPlanRepo) Create(_ context.Context, p *model.MealPlan) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.plans[p.ID] = p
	return nil
}

func (r *stubPlanRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MealPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPlanRepo) ListByDateRange(_ context.Context, userID, start, end string, onlyUnprepared bool) ([]model.MealPlan, error) {
	var out []model.MealPlan
	for _, p := range r.plans {
		if p.UserID != userID || p.Date < start || p.Date > end {
			continue
		}
		if onlyUnprepared && p.Prepared {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlanRepo) SetPrepared(_ context.Context, id uuid.UUID, prepared bool) error {
	p, ok := r.plans[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Prepared = prepared
	return nil
}

func (r *stubPlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.plans, id)
	return nil
}

// stubDishRepo is an in-memory DishRepository for testing.
type stubDishRepo struct {
	dishes map[uuid.UUID]*model.Dish
}

func newStubDishRepo() *stubDishRepo {
	return &stubDishRepo{dishes: make(map[uuid.UUID]*model.Dish)}
}

func (r *stubDishRepo) Create(_ context.Context, d *model.Dish) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.dishes[d.ID] = d
	return nil
}

func (r *stubDishRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Dish, error) {
	d, ok := r.dishes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDishRepo) List(_ context.Context, userID string) ([]model.Dish, error) {
	var out []model.Dish
	for _, d := range r.dishes {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDishRepo) Update(_ context.Context, d *model.Dish) error {
	r.dishes[d.ID] = d
	return nil
}

func (r *stubDishRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.dishes, id)
	return nil
}

// stubStockRepo is an in-memory StockRepository for testing.
type stubStockRepo struct {
	items map[uuid.UUID]*model.StockItem
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{items: make(map[uuid.UUID]*model.StockItem)}
}

func (r *stubStockRepo) Create(_ context.Context, item *model.StockItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubStockRepo) ListByUser(_ context.Context, userID string) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListLow(_ context.Context, userID string, threshold decimal.Decimal) ([]model.StockItem, error) {
	var out []model.StockItem
	for _, item := range r.items {
		if item.UserID == userID && item.Quantity.LessThanOrEqual(threshold) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubStockRepo) Update(_ context.Context, item *model.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubStockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// ── Fixtures ──────────────────────────────────────────────────────────────────

const testUser = "famille"

func seedDish(t *testing.T, repo *stubDishRepo, name string, ingredients ...model.DishIngredient) uuid.UUID {
	t.Helper()
	d := &model.Dish{
		UserID:       testUser,
		Name:         name,
		Course:       model.MealDinner,
		BaseServings: 1,
		Ingredients:  ingredients,
	}
	require.NoError(t, repo.Create(context.Background(), d))
	return d.ID
}

func ing(name string, qty float64, unit, category string) model.DishIngredient {
	q := decimal.NewFromFloat(qty)
	return model.DishIngredient{Name: name, Quantity: &q, Unit: unit, Category: category}
}

func seedPlan(t *testing.T, repo *stubPlanRepo, date string, dishID uuid.UUID, servings int, prepared bool) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.MealPlan{
		UserID:          testUser,
		Date:            date,
		MealType:        model.MealDinner,
		DishID:          dishID,
		ServingsPlanned: servings,
		Prepared:        prepared,
	}))
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestGenerateNoMealsPlanned(t *testing.T) {
	svc := NewShoppingService(newStubPlanRepo(), newStubDishRepo(), newStubStockRepo())

	resp, err := svc.Generate(context.Background(), testUser, dto.ShoppingListFilter{
		Start: "2026-08-31", End: "2026-09-06",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)
	assert.Equal(t, "Aucun repas non préparé planifié pour cette période.", resp.Message)
}

func TestGenerateStockCoversEverything(t *testing.T) {
	planRepo := newStubPlanRepo()
	dishRepo := newStubDishRepo()
	stockRepo := newStubStockRepo()

	dishID := seedDish(t, dishRepo, "Riz sauté", ing("riz", 2, "kg", "Féculents"))
	seedPlan(t, planRepo, "2026-09-01", dishID, 1, false)

	qty := decimal.NewFromInt(5)
	require.NoError(t, stockRepo.Create(context.Background(), &model.StockItem{
		UserID: testUser, Name: "Riz", Quantity: qty, Unit: "kg", Category: "Féculents",
	}))

	svc := NewShoppingService(planRepo, dishRepo, stockRepo)
	resp, err := svc.Generate(context.Background(), testUser, dto.ShoppingListFilter{
		Start: "2026-08-31", End: "2026-09-06",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)
	assert.Equal(t, shopping.NothingNeeded, resp.Message)
}

func TestGenerateNetsDemandAgainstStock(t *testing.T) {
	planRepo := newStubPlanRepo()
	dishRepo := newStubDishRepo()
	stockRepo := newStubStockRepo()

	dishID := seedDish(t, dishRepo, "Ndolé",
		ing("feuilles de ndolé", 0.5, "kg", "Légumes"),
		ing("arachides", 0.3, "kg", "Épicerie"),
	)
	seedPlan(t, planRepo, "2026-09-01", dishID, 4, false)

	qty := decimal.NewFromFloat(0.8)
	require.NoError(t, stockRepo.Create(context.Background(), &model.StockItem{
		UserID: testUser, Name: "Arachides", Quantity: qty, Unit: "kg", Category: "Épicerie",
	}))

	svc := NewShoppingService(planRepo, dishRepo, stockRepo)
	resp, err := svc.Generate(context.Background(), testUser, dto.ShoppingListFilter{
		Start: "2026-08-31", End: "2026-09-06",
	})
	require.NoError(t, err)
	require.Empty(t, resp.Message)
	require.Len(t, resp.Categories, 2)

	// Categories are sorted: Légumes then Épicerie (byte order puts accented É last)
	assert.Equal(t, "Légumes", resp.Categories[0].Category)
	require.Len(t, resp.Categories[0].Items, 1)
	assert.Equal(t, "feuilles de ndolé", resp.Categories[0].Items[0].Name)
	assert.True(t, resp.Categories[0].Items[0].Quantity.Equal(decimal.NewFromInt(2)))

	assert.Equal(t, "Épicerie", resp.Categories[1].Category)
	require.Len(t, resp.Categories[1].Items, 1)
	// 0.3 × 4 = 1.2 needed − 0.8 in stock = 0.4 to buy
	assert.True(t, resp.Categories[1].Items[0].Quantity.Equal(decimal.NewFromFloat(0.4)))
}

func TestGeneratePreparedMealsExcluded(t *testing.T) {
	planRepo := newStubPlanRepo()
	dishRepo := newStubDishRepo()
	stockRepo := newStubStockRepo()

	dishID := seedDish(t, dishRepo, "Poulet DG", ing("poulet", 1, "kg", "Viandes"))
	seedPlan(t, planRepo, "2026-09-02", dishID, 2, true)

	svc := NewShoppingService(planRepo, dishRepo, stockRepo)
	resp, err := svc.Generate(context.Background(), testUser, dto.ShoppingListFilter{
		Start: "2026-08-31", End: "2026-09-06",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)
	assert.Equal(t, "Aucun repas non préparé planifié pour cette période.", resp.Message)
}

func TestGroupedDanglingDishIgnored(t *testing.T) {
	planRepo := newStubPlanRepo()
	dishRepo := newStubDishRepo()
	stockRepo := newStubStockRepo()

	dishID := seedDish(t, dishRepo, "Okok", ing("feuilles d'okok", 1, "kg", "Légumes"))
	seedPlan(t, planRepo, "2026-09-01", dishID, 1, false)
	// Plan referencing a dish deleted afterwards
	seedPlan(t, planRepo, "2026-09-02", uuid.New(), 3, false)

	svc := NewShoppingService(planRepo, dishRepo, stockRepo)
	grouped, err := svc.Grouped(context.Background(), testUser, "2026-08-31", "2026-09-06")
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Len(t, grouped["Légumes"], 1)
}
