package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
)

func (r *Repository) InsertAuditLog(msg *domain.AuditMessage) error {
	query := `
		INSERT INTO employee_audit_logs (action, employee_id, actor, occurred_at)
		VALUES ($1, $2, $3, $4)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{msg.Action, msg.EmployeeID, msg.Actor, msg.OccurredAt}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
