package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/fleet/internal/core/calendar"
	"github.com/example/fleet/internal/core/reservation"
	"github.com/example/fleet/internal/core/workorder"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

// WorkOrderServiceImpl implements the WorkOrderService interface.
type WorkOrderServiceImpl struct {
	repo      secondary.WorkOrderRepository
	assetRepo secondary.AssetRepository
	settings  secondary.SettingsRepository
	notifier  secondary.ChangeNotifier
}

// NewWorkOrderService creates a new WorkOrderService with injected dependencies.
func NewWorkOrderService(repo secondary.WorkOrderRepository, assetRepo secondary.AssetRepository, settings secondary.SettingsRepository, notifier secondary.ChangeNotifier) *WorkOrderServiceImpl {
	return &WorkOrderServiceImpl{
		repo:      repo,
		assetRepo: assetRepo,
		settings:  settings,
		notifier:  notifier,
	}
}

// CreateWorkOrder validates and persists a new work order. An empty ETA is
// defaulted by skipping the configured working-day buffer past the anchor
// date (req.Today, or the current date).
func (s *WorkOrderServiceImpl) CreateWorkOrder(ctx context.Context, req primary.CreateWorkOrderRequest) (*primary.WorkOrder, error) {
	exists, err := s.assetRepo.Exists(ctx, req.AssetCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check asset: %w", err)
	}
	if req.AssetCode != "" && !exists {
		return nil, fmt.Errorf("asset %s not found", req.AssetCode)
	}

	eta := req.ETA
	if eta == "" {
		eta, err = s.defaultETA(ctx, req.Today)
		if err != nil {
			return nil, err
		}
	} else {
		eta, err = calendar.Normalize(eta)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
		}
	}

	guard := workorder.CanCreate(workorder.CreateContext{
		AssetCode: req.AssetCode,
		Type:      req.Type,
		Priority:  req.Priority,
		ETA:       eta,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	rec := &secondary.WorkOrderRecord{
		ID:          uuid.NewString(),
		AssetCode:   req.AssetCode,
		Type:        req.Type,
		Priority:    req.Priority,
		ETA:         eta,
		Description: req.Description,
		Status:      workorder.StatusOpen,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	s.notifier.Broadcast()
	return s.GetWorkOrder(ctx, rec.ID)
}

// GetWorkOrder retrieves a work order by id.
func (s *WorkOrderServiceImpl) GetWorkOrder(ctx context.Context, id string) (*primary.WorkOrder, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("work order %s not found", id)
	}
	return recordToWorkOrder(rec), nil
}

// ListWorkOrders lists work orders with optional filters, ordered by ETA.
func (s *WorkOrderServiceImpl) ListWorkOrders(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
	records, err := s.repo.List(ctx, secondary.WorkOrderFilters{
		AssetCode: filters.AssetCode,
		Status:    filters.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	out := make([]*primary.WorkOrder, len(records))
	for i, rec := range records {
		out[i] = recordToWorkOrder(rec)
	}
	return out, nil
}

// CompleteWorkOrder marks a work order done.
func (s *WorkOrderServiceImpl) CompleteWorkOrder(ctx context.Context, id string) error {
	if err := s.repo.Complete(ctx, id); err != nil {
		return fmt.Errorf("failed to complete work order: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

// DeleteWorkOrder removes a work order.
func (s *WorkOrderServiceImpl) DeleteWorkOrder(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

func (s *WorkOrderServiceImpl) defaultETA(ctx context.Context, today string) (string, error) {
	anchor := today
	if anchor == "" {
		anchor = calendar.Today()
	} else {
		var err error
		anchor, err = calendar.Normalize(anchor)
		if err != nil {
			return "", fmt.Errorf("%w: %v", reservation.ErrInvalidRange, err)
		}
	}

	buffer, ok, err := s.settings.GetBufferDays(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read buffer days: %w", err)
	}
	if !ok {
		buffer = DefaultBufferDays
	}

	dates, err := s.settings.GetHolidays(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read holidays: %w", err)
	}
	holidays, err := calendar.NewHolidaySet(dates)
	if err != nil {
		return "", fmt.Errorf("failed to build holiday set: %w", err)
	}

	eta, err := calendar.DefaultETA(anchor, buffer, holidays)
	if err != nil {
		return "", fmt.Errorf("failed to compute eta: %w", err)
	}
	return eta, nil
}

func recordToWorkOrder(rec *secondary.WorkOrderRecord) *primary.WorkOrder {
	return &primary.WorkOrder{
		ID:          rec.ID,
		AssetCode:   rec.AssetCode,
		Type:        rec.Type,
		Priority:    rec.Priority,
		ETA:         rec.ETA,
		Description: rec.Description,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		CompletedAt: rec.CompletedAt,
	}
}
