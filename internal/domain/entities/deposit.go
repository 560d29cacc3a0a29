package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the down-payment (sinal) processing outcome.
//
// In the requested scope we only need to create/process and persist an
// approved deposit. The type supports a denied status for completeness.

type DepositStatus string

const (
	DepositStatusPendente DepositStatus = "pendente"
	DepositStatusAprovado DepositStatus = "aprovado"
	DepositStatusNegado   DepositStatus = "negado"
)

// Deposit is the down payment taken on a finalized budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.
type Deposit struct {
	ID       string        `json:"id"`
	BudgetID string        `json:"budget_id"`
	Date     time.Time     `json:"date"`
	Status   DepositStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
