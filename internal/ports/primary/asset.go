package primary

import "context"

// AssetService defines the primary port for the asset registry. The
// scheduling core treats asset codes as opaque keys; the registry is the
// collaborator that owns them.
type AssetService interface {
	// RegisterAsset adds a fleet unit to the registry.
	RegisterAsset(ctx context.Context, req RegisterAssetRequest) (*Asset, error)

	// GetAsset retrieves an asset by code.
	GetAsset(ctx context.Context, code string) (*Asset, error)

	// ListAssets lists the registry ordered by code.
	ListAssets(ctx context.Context) ([]*Asset, error)

	// SetAssetStatus updates the operational status.
	SetAssetStatus(ctx context.Context, code, status string) error

	// DeleteAsset removes an asset from the registry.
	DeleteAsset(ctx context.Context, code string) error
}

// Asset statuses (operational state of the unit, distinct from the derived
// reservation availability).
const (
	AssetStatusReady       = "ready"
	AssetStatusRented      = "rented"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRepair      = "repair"
)

// RegisterAssetRequest contains parameters for registering an asset.
type RegisterAssetRequest struct {
	Code         string
	Brand        string
	Model        string
	SerialNumber string
	Year         int
	KVA          float64
	Site         string
	Customer     string
}

// Asset is a fleet unit as exposed to primary adapters.
type Asset struct {
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
