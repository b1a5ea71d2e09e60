package service

import (
	"context"
	"errors"
	"fmt"

	"planiftchop/internal/dto"
	"planiftchop/internal/model"
	"planiftchop/internal/notify"
	"planiftchop/internal/report"
	"planiftchop/internal/repository"
	"planiftchop/internal/shopping"
	"planiftchop/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNoRecipients is returned when neither the request nor the member
// register yields a single address.
var ErrNoRecipients = errors.New("aucun destinataire : ajoutez un membre de la famille ou précisez des adresses")

// ReportService assembles the family report (planning, stock, shopping
// list) and delivers it through the configured Notifier. It also
// implements worker.ReportSender so queued jobs reuse the same path.
type ReportService interface {
	// Build assembles the report email without sending it.
	Build(ctx context.Context, userID, start, end string, include report.Sections) (report.Email, error)
	// Send resolves recipients, then delivers inline or enqueues on the
	// worker pool. Delivery failure is reported in the response, not as
	// an error: a down mail provider must not look like a broken API.
	Send(ctx context.Context, userID string, req dto.EmailReportRequest) (*dto.EmailReportResponse, error)
	DeliverReport(ctx context.Context, recipients []string, start, end string, include report.Sections) error
}

type reportService struct {
	userID     string
	planRepo   repository.PlanRepository
	dishRepo   repository.DishRepository
	stockRepo  repository.StockRepository
	members    MemberService
	shoppingSv ShoppingService
	notifier   notify.Notifier
	dispatcher *worker.Dispatcher
}

func NewReportService(
	userID string,
	planRepo repository.PlanRepository,
	dishRepo repository.DishRepository,
	stockRepo repository.StockRepository,
	members MemberService,
	shoppingSv ShoppingService,
	notifier notify.Notifier,
	dispatcher *worker.Dispatcher,
) ReportService {
	return &reportService{
		userID:     userID,
		planRepo:   planRepo,
		dishRepo:   dishRepo,
		stockRepo:  stockRepo,
		members:    members,
		shoppingSv: shoppingSv,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

func (s *reportService) Build(ctx context.Context, userID, start, end string, include report.Sections) (report.Email, error) {
	bodies := report.SectionBodies{}

	if include.Planning {
		meals, err := s.plannedMeals(ctx, userID, start, end)
		if err != nil {
			return report.Email{}, fmt.Errorf("report: planning section: %w", err)
		}
		bodies.PlanningText = report.FormatPlanningText(meals)
		bodies.PlanningHTML = report.FormatPlanningHTML(meals)
	}

	if include.Stock {
		items, err := s.stockRepo.ListByUser(ctx, userID)
		if err != nil {
			return report.Email{}, fmt.Errorf("report: stock section: %w", err)
		}
		bodies.StockText = report.FormatStockText(items)
		bodies.StockHTML = report.FormatStockHTML(items)
	}

	if include.ShoppingList {
		grouped, err := s.shoppingSv.Grouped(ctx, userID, start, end)
		if err != nil {
			return report.Email{}, fmt.Errorf("report: shopping section: %w", err)
		}
		if grouped == nil {
			// No unprepared meals in range — the list section still
			// renders, stating that nothing needs buying.
			grouped = map[string][]shopping.Entry{}
		}
		bodies.ShoppingListText = shopping.FormatText(grouped)
		bodies.ShoppingListHTML = shopping.FormatHTML(grouped)
	}

	return report.BuildEmail(bodies, include, timeNow()), nil
}

func (s *reportService) Send(ctx context.Context, userID string, req dto.EmailReportRequest) (*dto.EmailReportResponse, error) {
	start, end := resolveRange(req.Start, req.End)
	include := normalizeSections(req.Include)

	recipients := req.Recipients
	if len(recipients) == 0 {
		emails, err := s.members.Emails(ctx, userID)
		if err != nil {
			return nil, err
		}
		recipients = emails
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	if req.Async {
		err := s.dispatcher.EnqueueReport(ctx, worker.ReportJobPayload{
			Recipients: recipients,
			Start:      start,
			End:        end,
			Include:    include,
		})
		if err != nil {
			return nil, fmt.Errorf("report: enqueue: %w", err)
		}
		return &dto.EmailReportResponse{
			Success: true,
			Message: "Rapport mis en file d'attente pour envoi.",
		}, nil
	}

	if err := s.DeliverReport(ctx, recipients, start, end, include); err != nil {
		log.Error().Err(err).Strs("recipients", recipients).Msg("report: delivery failed")
		return &dto.EmailReportResponse{
			Success: false,
			Message: "Échec de l'envoi du rapport : " + err.Error(),
		}, nil
	}
	return &dto.EmailReportResponse{
		Success: true,
		Message: fmt.Sprintf("Rapport envoyé à %d destinataire(s).", len(recipients)),
	}, nil
}

// DeliverReport builds and sends in one step. Used inline and by the
// worker pool.
func (s *reportService) DeliverReport(ctx context.Context, recipients []string, start, end string, include report.Sections) error {
	mail, err := s.Build(ctx, s.userID, start, end, normalizeSections(include))
	if err != nil {
		return err
	}
	return s.notifier.Send(ctx, recipients, mail.Subject, mail.Text, mail.HTML)
}

func (s *reportService) plannedMeals(ctx context.Context, userID, start, end string) ([]report.PlannedMeal, error) {
	plans, err := s.planRepo.ListByDateRange(ctx, userID, start, end, false)
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

	meals := make([]report.PlannedMeal, 0, len(plans))
	for _, plan := range plans {
		meals = append(meals, report.PlannedMeal{Plan: plan, Dish: dishMap[plan.DishID]})
	}
	return meals, nil
}

// normalizeSections treats an all-false selection as "everything" — the
// caller asked for a report, not for an empty envelope.
func normalizeSections(include report.Sections) report.Sections {
	if !include.Planning && !include.Stock && !include.ShoppingList {
		return report.Sections{Planning: true, Stock: true, ShoppingList: true}
	}
	return include
}
