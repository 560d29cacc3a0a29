package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidCostPrice    = errors.New("invalid cost price")
	ErrInvalidMinimum      = errors.New("invalid dimension minimum")
	ErrInvalidProfitMargin = errors.New("invalid profit margin")
	ErrMissingHeightTiers  = errors.New("height-tiered product requires a tier table")
	ErrInvalidHeightTier   = errors.New("invalid height tier")

	ErrAccessoryNotFound     = errors.New("accessory not found")
	ErrInvalidAccessoryID    = errors.New("invalid accessory id")
	ErrInvalidAccessoryName  = errors.New("invalid accessory name")
	ErrAccessoryNeedsColors  = errors.New("accessory requires at least one color")
	ErrInvalidAccessoryColor = errors.New("invalid accessory color")

	ErrUnknownRailType     = errors.New("unknown rail type")
	ErrNegativeConfigPrice = errors.New("config price cannot be negative")
)

// ICatalogUseCase manages the product/accessory catalog and the pricing
// configuration consumed by the budget engine. Sale prices are derived from
// cost + margin at save time so stored records are always consistent.

type ICatalogUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)

	CreateAccessory(ctx context.Context, a entities.Accessory) (entities.Accessory, error)
	UpdateAccessory(ctx context.Context, a entities.Accessory) (entities.Accessory, error)
	DeleteAccessory(ctx context.Context, id string) error
	GetAccessory(ctx context.Context, id string) (entities.Accessory, error)
	ListAccessories(ctx context.Context) ([]entities.Accessory, error)

	GetRailTable(ctx context.Context) (entities.RailPricingTable, error)
	SaveRailTable(ctx context.Context, table entities.RailPricingTable) (entities.RailPricingTable, error)
	GetValanceConfig(ctx context.Context) (entities.ValanceConfig, error)
	SaveValanceConfig(ctx context.Context, cfg entities.ValanceConfig) (entities.ValanceConfig, error)
}

type CatalogUseCase struct {
	products    interfaces.IProductRepository
	accessories interfaces.IAccessoryRepository
	config      interfaces.IPricingConfigRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	products interfaces.IProductRepository,
	accessories interfaces.IAccessoryRepository,
	config interfaces.IPricingConfigRepository,
) *CatalogUseCase {
	return &CatalogUseCase{products: products, accessories: accessories, config: config}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	normalized, err := normalizeProduct(p)
	if err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	normalized.ID = uuid.NewString()
	normalized.CreatedAt = now
	normalized.UpdatedAt = now
	return u.products.Create(ctx, normalized)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	existing, err := u.products.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	normalized, err := normalizeProduct(p)
	if err != nil {
		return entities.Product{}, err
	}
	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt
	normalized.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, normalized)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

// normalizeProduct validates catalog input and derives the stored pricing
// fields: the canonical calculation method and the sale price.
func normalizeProduct(p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if p.ProfitMargin < 0 {
		return entities.Product{}, ErrInvalidProfitMargin
	}
	if p.MinWidth < 0 || p.MinHeight < 0 || p.MinArea < 0 || p.MaxWidth < 0 {
		return entities.Product{}, ErrInvalidMinimum
	}

	p.ModelTag = strings.TrimSpace(p.ModelTag)
	p.Method = entities.ResolveCalculationMethod(string(p.Method), p.ModelTag)

	if p.IsHeightTiered() {
		if len(p.HeightTiers) == 0 {
			return entities.Product{}, ErrMissingHeightTiers
		}
		for _, tier := range p.HeightTiers {
			if tier.MinHeight < 0 || tier.MaxHeight < tier.MinHeight || tier.Price < 0 {
				return entities.Product{}, ErrInvalidHeightTier
			}
		}
		// Height-tiered pricing is tier-specific; the flat prices stay zero.
		p.CostPrice = 0
		p.SalePrice = 0
		return p, nil
	}

	if p.CostPrice < 0 {
		return entities.Product{}, ErrInvalidCostPrice
	}
	p.HeightTiers = nil
	p.SalePrice = entities.SalePriceFrom(p.CostPrice, p.ProfitMargin)
	return p, nil
}

func (u *CatalogUseCase) CreateAccessory(ctx context.Context, a entities.Accessory) (entities.Accessory, error) {
	normalized, err := normalizeAccessory(a)
	if err != nil {
		return entities.Accessory{}, err
	}

	now := time.Now().UTC()
	normalized.ID = uuid.NewString()
	normalized.CreatedAt = now
	normalized.UpdatedAt = now
	return u.accessories.Create(ctx, normalized)
}

func (u *CatalogUseCase) UpdateAccessory(ctx context.Context, a entities.Accessory) (entities.Accessory, error) {
	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		return entities.Accessory{}, ErrInvalidAccessoryID
	}

	existing, err := u.accessories.GetByID(ctx, a.ID)
	if err != nil {
		return entities.Accessory{}, err
	}
	if existing.ID == "" {
		return entities.Accessory{}, ErrAccessoryNotFound
	}

	normalized, err := normalizeAccessory(a)
	if err != nil {
		return entities.Accessory{}, err
	}
	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt
	normalized.UpdatedAt = time.Now().UTC()
	return u.accessories.Update(ctx, normalized)
}

func (u *CatalogUseCase) DeleteAccessory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAccessoryID
	}
	return u.accessories.Delete(ctx, id)
}

func (u *CatalogUseCase) GetAccessory(ctx context.Context, id string) (entities.Accessory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Accessory{}, ErrInvalidAccessoryID
	}

	a, err := u.accessories.GetByID(ctx, id)
	if err != nil {
		return entities.Accessory{}, err
	}
	if a.ID == "" {
		return entities.Accessory{}, ErrAccessoryNotFound
	}
	return a, nil
}

func (u *CatalogUseCase) ListAccessories(ctx context.Context) ([]entities.Accessory, error) {
	return u.accessories.List(ctx)
}

func normalizeAccessory(a entities.Accessory) (entities.Accessory, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return entities.Accessory{}, ErrInvalidAccessoryName
	}
	if len(a.Colors) == 0 {
		return entities.Accessory{}, ErrAccessoryNeedsColors
	}

	colors := make([]entities.AccessoryColor, 0, len(a.Colors))
	for _, c := range a.Colors {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" || c.CostPrice < 0 || c.ProfitMargin < 0 {
			return entities.Accessory{}, ErrInvalidAccessoryColor
		}
		c.SalePrice = entities.SalePriceFrom(c.CostPrice, c.ProfitMargin)
		colors = append(colors, c)
	}
	a.Colors = colors
	return a, nil
}

func (u *CatalogUseCase) GetRailTable(ctx context.Context) (entities.RailPricingTable, error) {
	return u.config.GetRailTable(ctx)
}

// SaveRailTable normalizes incoming keys (UI aliases included) to the
// canonical six rail types before persisting. Unknown keys are rejected.
func (u *CatalogUseCase) SaveRailTable(ctx context.Context, table entities.RailPricingTable) (entities.RailPricingTable, error) {
	normalized := make(entities.RailPricingTable, len(table))
	for key, price := range table {
		rt, ok := entities.NormalizeRailType(string(key))
		if !ok {
			return nil, ErrUnknownRailType
		}
		if price.CostPrice < 0 || price.SalePrice < 0 {
			return nil, ErrNegativeConfigPrice
		}
		normalized[rt] = price
	}
	if err := u.config.PutRailTable(ctx, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (u *CatalogUseCase) GetValanceConfig(ctx context.Context) (entities.ValanceConfig, error) {
	return u.config.GetValanceConfig(ctx)
}

func (u *CatalogUseCase) SaveValanceConfig(ctx context.Context, cfg entities.ValanceConfig) (entities.ValanceConfig, error) {
	if cfg.CostPricePerMeter < 0 || cfg.SalePricePerMeter < 0 {
		return entities.ValanceConfig{}, ErrNegativeConfigPrice
	}
	if err := u.config.PutValanceConfig(ctx, cfg); err != nil {
		return entities.ValanceConfig{}, err
	}
	return cfg, nil
}
