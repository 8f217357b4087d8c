package primary

import "context"

// WorkOrderService defines the primary port for maintenance/repair orders.
type WorkOrderService interface {
	// CreateWorkOrder validates and persists a new work order. When the
	// request carries no ETA, one is computed from the working-day calendar.
	CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error)

	// GetWorkOrder retrieves a work order by id.
	GetWorkOrder(ctx context.Context, id string) (*WorkOrder, error)

	// ListWorkOrders lists work orders with optional filters, ordered by ETA.
	ListWorkOrders(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrder, error)

	// CompleteWorkOrder marks a work order done.
	CompleteWorkOrder(ctx context.Context, id string) error

	// DeleteWorkOrder removes a work order.
	DeleteWorkOrder(ctx context.Context, id string) error
}

// CreateWorkOrderRequest contains parameters for creating a work order.
// Today anchors the default-ETA computation when ETA is empty; the CLI fills
// it with the current date.
type CreateWorkOrderRequest struct {
	AssetCode   string
	Type        string // PM or CM
	Priority    string // 1..3
	ETA         string // optional; defaulted when empty
	Description string
	Today       string
}

// WorkOrder is the order as exposed to primary adapters.
type WorkOrder struct {
	ID          string
	AssetCode   string
	Type        string
	Priority    string
	ETA         string
	Description string
	Status      string
	CreatedAt   string
	CompletedAt string
}

// WorkOrderFilters contains filter options for listing work orders.
type WorkOrderFilters struct {
	AssetCode string
	Status    string
}
