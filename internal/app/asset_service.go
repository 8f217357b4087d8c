package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

var validAssetStatuses = map[string]bool{
	primary.AssetStatusReady:       true,
	primary.AssetStatusRented:      true,
	primary.AssetStatusMaintenance: true,
	primary.AssetStatusRepair:      true,
}

// AssetServiceImpl implements the AssetService interface.
type AssetServiceImpl struct {
	repo     secondary.AssetRepository
	notifier secondary.ChangeNotifier
}

// NewAssetService creates a new AssetService with injected dependencies.
func NewAssetService(repo secondary.AssetRepository, notifier secondary.ChangeNotifier) *AssetServiceImpl {
	return &AssetServiceImpl{
		repo:     repo,
		notifier: notifier,
	}
}

// RegisterAsset adds a fleet unit to the registry. Codes are unique; new
// assets start in the ready status.
func (s *AssetServiceImpl) RegisterAsset(ctx context.Context, req primary.RegisterAssetRequest) (*primary.Asset, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("asset code is required")
	}
	if strings.TrimSpace(req.Brand) == "" {
		return nil, fmt.Errorf("brand is required")
	}
	if strings.TrimSpace(req.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}

	exists, err := s.repo.Exists(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check asset: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("asset %s already exists", code)
	}

	rec := &secondary.AssetRecord{
		Code:         code,
		Brand:        strings.TrimSpace(req.Brand),
		Model:        strings.TrimSpace(req.Model),
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		Year:         req.Year,
		KVA:          req.KVA,
		Status:       primary.AssetStatusReady,
		Site:         strings.TrimSpace(req.Site),
		Customer:     strings.TrimSpace(req.Customer),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to register asset: %w", err)
	}

	s.notifier.Broadcast()
	return s.GetAsset(ctx, code)
}

// GetAsset retrieves an asset by code.
func (s *AssetServiceImpl) GetAsset(ctx context.Context, code string) (*primary.Asset, error) {
	rec, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("asset %s not found", code)
	}
	return recordToAsset(rec), nil
}

// ListAssets lists the registry ordered by code.
func (s *AssetServiceImpl) ListAssets(ctx context.Context) ([]*primary.Asset, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	out := make([]*primary.Asset, len(records))
	for i, rec := range records {
		out[i] = recordToAsset(rec)
	}
	return out, nil
}

// SetAssetStatus updates the operational status.
func (s *AssetServiceImpl) SetAssetStatus(ctx context.Context, code, status string) error {
	if !validAssetStatuses[status] {
		return fmt.Errorf("invalid status: %s (valid: ready, rented, maintenance, repair)", status)
	}
	if err := s.repo.UpdateStatus(ctx, code, status); err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

// DeleteAsset removes an asset from the registry.
func (s *AssetServiceImpl) DeleteAsset(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.notifier.Broadcast()
	return nil
}

func recordToAsset(rec *secondary.AssetRecord) *primary.Asset {
	return &primary.Asset{
		Code:         rec.Code,
		Brand:        rec.Brand,
		Model:        rec.Model,
		SerialNumber: rec.SerialNumber,
		Year:         rec.Year,
		KVA:          rec.KVA,
		Status:       rec.Status,
		Site:         rec.Site,
		Customer:     rec.Customer,
	}
}
