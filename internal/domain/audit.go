package domain

import (
	"time"
)

type AuditMessage struct {
	Action     string    `json:"action"` // create / update / delete
	EmployeeID string    `json:"employeeId"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}
