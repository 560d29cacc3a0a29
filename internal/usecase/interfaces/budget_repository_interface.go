package interfaces

import (
	"context"

	"cortinaria/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The budgeting service must be able to:
//   - create a budget with its assigned sequential number
//   - replace a budget's contents on edit (number/status/creation untouched)
//   - update the status by budget ID (finalize/cancel/reactivate)
//   - resolve the highest assigned number for sequential numbering

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	HighestNumber(ctx context.Context) (int, error)
}
