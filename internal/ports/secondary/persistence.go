// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// ReservationRepository defines the secondary port for booking persistence.
// Implementations must serialize mutations behind a single lock and give
// readers a consistent snapshot of the record set; records are returned in
// insertion order.
type ReservationRepository interface {
	// Add persists a new reservation.
	Add(ctx context.Context, r *ReservationRecord) error

	// Remove deletes a reservation by id. Removing an unknown id is a no-op.
	Remove(ctx context.Context, id string) error

	// GetByID retrieves a reservation by id, or nil when absent.
	GetByID(ctx context.Context, id string) (*ReservationRecord, error)

	// ListByAsset retrieves the reservations of one asset in insertion order.
	ListByAsset(ctx context.Context, assetCode string) ([]*ReservationRecord, error)

	// ListAll retrieves every reservation in insertion order.
	ListAll(ctx context.Context) ([]*ReservationRecord, error)
}

// ReservationRecord represents a reservation as stored in persistence.
// Dates are canonical YYYY-MM-DD strings.
type ReservationRecord struct {
	ID        string `json:"id"`
	AssetCode string `json:"assetCode"`
	Customer  string `json:"customer"`
	Comment   string `json:"comment,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SettingsRepository defines the secondary port for scheduler configuration.
type SettingsRepository interface {
	// GetBufferDays returns the configured buffer and whether it was set.
	GetBufferDays(ctx context.Context) (int, bool, error)

	// SetBufferDays persists the buffer.
	SetBufferDays(ctx context.Context, days int) error

	// GetHolidays returns the stored holiday dates. Missing or malformed
	// state yields an empty list, never an error.
	GetHolidays(ctx context.Context) ([]string, error)

	// SetHolidays replaces the holiday list wholesale.
	SetHolidays(ctx context.Context, dates []string) error
}

// AssetRepository defines the secondary port for the asset registry.
type AssetRepository interface {
	// Create persists a new asset.
	Create(ctx context.Context, a *AssetRecord) error

	// GetByCode retrieves an asset by its code.
	GetByCode(ctx context.Context, code string) (*AssetRecord, error)

	// List retrieves all assets ordered by code.
	List(ctx context.Context) ([]*AssetRecord, error)

	// UpdateStatus sets the asset's operational status.
	UpdateStatus(ctx context.Context, code, status string) error

	// Delete removes an asset from the registry.
	Delete(ctx context.Context, code string) error

	// Exists checks whether an asset code is registered.
	Exists(ctx context.Context, code string) (bool, error)
}

// AssetRecord represents a fleet unit as stored in the registry.
type AssetRecord struct {
	Code         string
	Brand        string
	Model        string
	SerialNumber string
	Year         int
	KVA          float64
	Status       string
	Site         string
	Customer     string
}

// WorkOrderRepository defines the secondary port for work order persistence.
type WorkOrderRepository interface {
	// Create persists a new work order.
	Create(ctx context.Context, wo *WorkOrderRecord) error

	// GetByID retrieves a work order by id.
	GetByID(ctx context.Context, id string) (*WorkOrderRecord, error)

	// List retrieves work orders matching the given filters, ordered by ETA.
	List(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrderRecord, error)

	// Complete marks a work order done.
	Complete(ctx context.Context, id string) error

	// Delete removes a work order.
	Delete(ctx context.Context, id string) error
}

// WorkOrderRecord represents a maintenance/repair order as stored.
type WorkOrderRecord struct {
	ID          string
	AssetCode   string
	Type        string // PM or CM
	Priority    string // 1..3
	ETA         string // canonical date
	Description string
	Status      string // open or done
	CreatedAt   string
	CompletedAt string
}

// WorkOrderFilters contains filter options for querying work orders.
type WorkOrderFilters struct {
	AssetCode string
	Status    string
}

// ChangeNotifier defines the secondary port for the change broadcast fired
// after every successful mutation. The event carries no payload and is
// fire-and-forget: consumers re-query, correctness never depends on it.
type ChangeNotifier interface {
	Broadcast()
}
