package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/domain/pricing"
	"cortinaria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrInvalidBudgetID    = errors.New("invalid budget id")
	ErrInvalidCustomerID  = errors.New("invalid customer id")
	ErrEmptyBudget        = errors.New("budget has no items")
	ErrBudgetNotPending   = errors.New("budget is not pending")
	ErrBudgetNotCanceled  = errors.New("budget is not canceled")
	ErrInvalidNegotiation = errors.New("invalid negotiated value")
)

// LineItemInput is the user-entered data for one budget line. Dimensions and
// prices are resolved server-side from the product record; any client-side
// subtotal is ignored.
type LineItemInput struct {
	ProductID         string
	Width             float64
	Height            float64
	Valance           bool
	Installation      bool
	InstallationValue float64
	Panel             bool
	PanelCount        int
	RailType          string
}

// AccessoryItemInput is the user-entered data for one accessory line.
type AccessoryItemInput struct {
	AccessoryID string
	Color       string
	Quantity    float64
}

// BudgetInput is the command payload for creating or editing a budget.
type BudgetInput struct {
	CustomerID      string
	LineItems       []LineItemInput
	Accessories     []AccessoryItemInput
	Observation     string
	NegotiatedValue *float64
}

// IBudgetUseCase exposes the budget aggregation operations:
//   - Create assigns the sequential number and computes every subtotal.
//   - Update replaces items/observation/negotiation and recomputes totals;
//     number, status and creation time never change on edit.
//   - Finalize/Cancel/Reactivate drive the status machine.

type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error)
	Finalize(ctx context.Context, id string) (entities.Budget, error)
	Cancel(ctx context.Context, id string) (entities.Budget, error)
	Reactivate(ctx context.Context, id string) (entities.Budget, error)
}

type BudgetUseCase struct {
	budgets     interfaces.IBudgetRepository
	products    interfaces.IProductRepository
	accessories interfaces.IAccessoryRepository
	config      interfaces.IPricingConfigRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	products interfaces.IProductRepository,
	accessories interfaces.IAccessoryRepository,
	config interfaces.IPricingConfigRepository,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgets:     budgets,
		products:    products,
		accessories: accessories,
		config:      config,
	}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID == "" {
		return entities.Budget{}, ErrInvalidCustomerID
	}
	if len(in.LineItems) == 0 && len(in.Accessories) == 0 {
		return entities.Budget{}, ErrEmptyBudget
	}
	if in.NegotiatedValue != nil && *in.NegotiatedValue < 0 {
		return entities.Budget{}, ErrInvalidNegotiation
	}

	lines, accs, err := u.buildItems(ctx, in)
	if err != nil {
		return entities.Budget{}, err
	}

	highest, err := u.budgets.HighestNumber(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:              uuid.NewString(),
		CustomerID:      in.CustomerID,
		Number:          entities.NextBudgetNumber(highest),
		LineItems:       lines,
		Accessories:     accs,
		Observation:     in.Observation,
		NegotiatedValue: in.NegotiatedValue,
		Status:          entities.BudgetStatusPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	b.TotalValue = b.ComputeTotal()
	return u.budgets.Create(ctx, b)
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if len(in.LineItems) == 0 && len(in.Accessories) == 0 {
		return entities.Budget{}, ErrEmptyBudget
	}
	if in.NegotiatedValue != nil && *in.NegotiatedValue < 0 {
		return entities.Budget{}, ErrInvalidNegotiation
	}

	existing, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	lines, accs, err := u.buildItems(ctx, in)
	if err != nil {
		return entities.Budget{}, err
	}

	existing.LineItems = lines
	existing.Accessories = accs
	existing.Observation = in.Observation
	existing.NegotiatedValue = in.NegotiatedValue
	existing.TotalValue = existing.ComputeTotal()
	existing.UpdatedAt = time.Now().UTC()
	if in.CustomerID = strings.TrimSpace(in.CustomerID); in.CustomerID != "" {
		existing.CustomerID = in.CustomerID
	}

	return u.budgets.Update(ctx, existing)
}

// buildItems recomputes every line and accessory subtotal from the current
// catalog and pricing config. Missing products/accessories contribute zero
// instead of aborting the whole budget, so one stale reference does not
// corrupt the rest.
func (u *BudgetUseCase) buildItems(ctx context.Context, in BudgetInput) ([]entities.BudgetLineItem, []entities.BudgetAccessoryItem, error) {
	cfg, err := u.loadPricingConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	lines := make([]entities.BudgetLineItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		p, err := u.products.GetByID(ctx, strings.TrimSpace(li.ProductID))
		if err != nil {
			return nil, nil, err
		}

		item := entities.BudgetLineItem{
			ProductID:    strings.TrimSpace(li.ProductID),
			InputWidth:   li.Width,
			InputHeight:  li.Height,
			Valance:      li.Valance,
			Installation: li.Installation,
			Panel:        li.Panel,
			PanelCount:   li.PanelCount,
		}
		if item.PanelCount <= 0 {
			item.PanelCount = 1
		}
		if p.ID == "" {
			lines = append(lines, item)
			continue
		}

		res := pricing.CalculateLine(p, li.Width, li.Height, pricing.LineOptions{
			Valance:           li.Valance,
			Installation:      li.Installation,
			InstallationValue: li.InstallationValue,
			Panel:             li.Panel,
			PanelCount:        li.PanelCount,
			RailType:          li.RailType,
		}, cfg)

		item.ProductName = p.Name
		item.FinalWidth = res.Dimensions.Width
		item.FinalHeight = res.Dimensions.Height
		item.FinalArea = res.Dimensions.Area
		item.UsedMinimum = res.Dimensions.UsedMinimum
		item.InputWidth = res.Dimensions.InputWidth
		item.InputHeight = res.Dimensions.InputHeight
		item.ValanceSaleValue = res.ValanceSaleValue
		item.ValanceCostValue = res.ValanceCostValue
		item.InstallationValue = res.InstallationValue
		item.RailValue = res.RailValue
		item.Subtotal = res.Subtotal
		if p.IsHeightTiered() {
			if rt, ok := entities.NormalizeRailType(li.RailType); ok {
				item.RailType = string(rt)
			}
		}
		lines = append(lines, item)
	}

	accs := make([]entities.BudgetAccessoryItem, 0, len(in.Accessories))
	for _, ai := range in.Accessories {
		a, err := u.accessories.GetByID(ctx, strings.TrimSpace(ai.AccessoryID))
		if err != nil {
			return nil, nil, err
		}

		item := entities.BudgetAccessoryItem{
			AccessoryID: strings.TrimSpace(ai.AccessoryID),
			Color:       strings.TrimSpace(ai.Color),
			Quantity:    ai.Quantity,
		}
		if a.ID == "" {
			accs = append(accs, item)
			continue
		}

		item.AccessoryName = a.Name
		item.Unit = a.Unit
		for _, c := range a.Colors {
			if strings.EqualFold(strings.TrimSpace(c.Name), item.Color) {
				item.UnitSalePrice = c.SalePrice
				break
			}
		}
		item.Subtotal = pricing.AccessorySubtotal(a, ai.Color, ai.Quantity)
		accs = append(accs, item)
	}

	return lines, accs, nil
}

func (u *BudgetUseCase) loadPricingConfig(ctx context.Context) (pricing.Config, error) {
	rails, err := u.config.GetRailTable(ctx)
	if err != nil {
		return pricing.Config{}, err
	}
	valance, err := u.config.GetValanceConfig(ctx)
	if err != nil {
		return pricing.Config{}, err
	}
	return pricing.Config{Valance: valance, Rails: rails}, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.budgets.ListByCustomerID(ctx, customerID)
}

// Finalize moves a budget to the finalized state. Finalizing has no
// precondition beyond existence; a finalized budget can still be edited but
// its status no longer changes on edit.
func (u *BudgetUseCase) Finalize(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusFinalizado, nil)
}

// Cancel rejects the transition unless the current status resolves to
// pending (legacy spellings included).
func (u *BudgetUseCase) Cancel(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusCancelado, func(b entities.Budget) error {
		if !entities.IsPending(b.Status) {
			return ErrBudgetNotPending
		}
		return nil
	})
}

// Reactivate returns a canceled budget to pending.
func (u *BudgetUseCase) Reactivate(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusPendente, func(b entities.Budget) error {
		if b.Status != entities.BudgetStatusCancelado {
			return ErrBudgetNotCanceled
		}
		return nil
	})
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, id string, status entities.BudgetStatus, guard func(entities.Budget) error) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if guard != nil {
		if err := guard(b); err != nil {
			return entities.Budget{}, err
		}
	}

	updated, err := u.budgets.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}
