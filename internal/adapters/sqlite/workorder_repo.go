package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fleet/internal/ports/secondary"
)

// WorkOrderRepository implements secondary.WorkOrderRepository with SQLite.
type WorkOrderRepository struct {
	db *sql.DB
}

// NewWorkOrderRepository creates a new SQLite work order repository.
func NewWorkOrderRepository(db *sql.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

const workOrderSelectCols = "id, asset_code, type, priority, eta, description, status, created_at, completed_at"

// scanWorkOrder scans a work order row into a WorkOrderRecord.
func scanWorkOrder(scanner interface {
	Scan(dest ...any) error
}) (*secondary.WorkOrderRecord, error) {
	var (
		desc        sql.NullString
		createdAt   time.Time
		completedAt sql.NullTime
	)

	record := &secondary.WorkOrderRecord{}
	err := scanner.Scan(
		&record.ID, &record.AssetCode, &record.Type, &record.Priority, &record.ETA,
		&desc, &record.Status, &createdAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Create persists a new work order.
func (r *WorkOrderRepository) Create(ctx context.Context, wo *secondary.WorkOrderRecord) error {
	var desc sql.NullString
	if wo.Description != "" {
		desc = sql.NullString{String: wo.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO work_orders (id, asset_code, type, priority, eta, description, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		wo.ID, wo.AssetCode, wo.Type, wo.Priority, wo.ETA, desc, "open",
	)
	if err != nil {
		return fmt.Errorf("failed to create work order: %w", err)
	}
	return nil
}

// GetByID retrieves a work order by id, or nil when absent.
func (r *WorkOrderRepository) GetByID(ctx context.Context, id string) (*secondary.WorkOrderRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workOrderSelectCols+" FROM work_orders WHERE id = ?", id)
	record, err := scanWorkOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return record, nil
}

// List retrieves work orders matching the given filters, ordered by ETA.
func (r *WorkOrderRepository) List(ctx context.Context, filters secondary.WorkOrderFilters) ([]*secondary.WorkOrderRecord, error) {
	query := "SELECT " + workOrderSelectCols + " FROM work_orders WHERE 1=1"
	args := []any{}

	if filters.AssetCode != "" {
		query += " AND asset_code = ?"
		args = append(args, filters.AssetCode)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY eta, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var orders []*secondary.WorkOrderRecord
	for rows.Next() {
		record, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, record)
	}
	return orders, rows.Err()
}

// Complete marks a work order done.
func (r *WorkOrderRepository) Complete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE work_orders SET status = 'done', completed_at = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete work order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("work order %s not found", id)
	}
	return nil
}

// Delete removes a work order.
func (r *WorkOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM work_orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	return nil
}
