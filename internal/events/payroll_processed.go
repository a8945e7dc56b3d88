package events

import "time"

const PayrollProcessedTopic = "ems.payroll.processed.v1"

type PayrollProcessedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Amount       float64   `json:"amount"`
	Month        string    `json:"month"`
	OccurredAt   time.Time `json:"occurred_at"`
}
