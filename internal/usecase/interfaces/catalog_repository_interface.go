package interfaces

import (
	"context"

	"cortinaria/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

// IAccessoryRepository abstracts DynamoDB persistence for Accessory.

type IAccessoryRepository interface {
	Create(ctx context.Context, a entities.Accessory) (entities.Accessory, error)
	GetByID(ctx context.Context, id string) (entities.Accessory, error)
	List(ctx context.Context) ([]entities.Accessory, error)
	Update(ctx context.Context, a entities.Accessory) (entities.Accessory, error)
	Delete(ctx context.Context, id string) error
}

// IPricingConfigRepository abstracts the read-mostly pricing configuration:
// the rail price table and the global valance config. Implementations may sit
// behind a cache; writes must invalidate it.

type IPricingConfigRepository interface {
	GetRailTable(ctx context.Context) (entities.RailPricingTable, error)
	PutRailTable(ctx context.Context, table entities.RailPricingTable) error
	GetValanceConfig(ctx context.Context) (entities.ValanceConfig, error)
	PutValanceConfig(ctx context.Context, cfg entities.ValanceConfig) error
}
