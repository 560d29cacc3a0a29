package response

import (
	"time"

	"cortinaria/internal/domain/entities"
)

type DepositResponse struct {
	DepositID string    `json:"deposit_id"`
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:    d.ID,
		ID:           d.ID,
		BudgetID:     d.BudgetID,
		Date:         d.Date,
		Status:       string(d.Status),
		MPPayloadRaw: string(d.MPPayloadRaw),
		MPPayload:    d.MPPayload,
	}
}

func FromDeposits(deposits []entities.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}
