package interfaces

import (
	"context"

	"cortinaria/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.

type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error)
}
