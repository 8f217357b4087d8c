package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/fleet/internal/ports/secondary"
)

// AssetRepository implements secondary.AssetRepository with SQLite.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new SQLite asset repository.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetSelectCols = "code, brand, model, serial_number, year, kva, status, site, customer"

// scanAsset scans an asset row into an AssetRecord.
func scanAsset(scanner interface {
	Scan(dest ...any) error
}) (*secondary.AssetRecord, error) {
	var (
		serial   sql.NullString
		year     sql.NullInt64
		kva      sql.NullFloat64
		site     sql.NullString
		customer sql.NullString
	)

	record := &secondary.AssetRecord{}
	err := scanner.Scan(&record.Code, &record.Brand, &record.Model, &serial, &year, &kva, &record.Status, &site, &customer)
	if err != nil {
		return nil, err
	}

	record.SerialNumber = serial.String
	record.Year = int(year.Int64)
	record.KVA = kva.Float64
	record.Site = site.String
	record.Customer = customer.String

	return record, nil
}

// Create persists a new asset.
func (r *AssetRepository) Create(ctx context.Context, a *secondary.AssetRecord) error {
	var serial, site, customer sql.NullString
	var year sql.NullInt64
	var kva sql.NullFloat64

	if a.SerialNumber != "" {
		serial = sql.NullString{String: a.SerialNumber, Valid: true}
	}
	if a.Site != "" {
		site = sql.NullString{String: a.Site, Valid: true}
	}
	if a.Customer != "" {
		customer = sql.NullString{String: a.Customer, Valid: true}
	}
	if a.Year != 0 {
		year = sql.NullInt64{Int64: int64(a.Year), Valid: true}
	}
	if a.KVA != 0 {
		kva = sql.NullFloat64{Float64: a.KVA, Valid: true}
	}

	status := a.Status
	if status == "" {
		status = "ready"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO assets (code, brand, model, serial_number, year, kva, status, site, customer) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		a.Code, a.Brand, a.Model, serial, year, kva, status, site, customer,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetByCode retrieves an asset by its code.
func (r *AssetRepository) GetByCode(ctx context.Context, code string) (*secondary.AssetRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+assetSelectCols+" FROM assets WHERE code = ?", code)
	record, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return record, nil
}

// List retrieves all assets ordered by code.
func (r *AssetRepository) List(ctx context.Context) ([]*secondary.AssetRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+assetSelectCols+" FROM assets ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*secondary.AssetRecord
	for rows.Next() {
		record, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, record)
	}
	return assets, rows.Err()
}

// UpdateStatus sets the asset's operational status.
func (r *AssetRepository) UpdateStatus(ctx context.Context, code, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE assets SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE code = ?",
		status, code,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("asset %s not found", code)
	}
	return nil
}

// Delete removes an asset from the registry.
func (r *AssetRepository) Delete(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM assets WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// Exists checks whether an asset code is registered.
func (r *AssetRepository) Exists(ctx context.Context, code string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assets WHERE code = ?", code).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check asset: %w", err)
	}
	return count > 0, nil
}
