package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

func newWorkOrderFixture() (*WorkOrderServiceImpl, *mockWorkOrderRepository, *mockSettingsRepository, *mockNotifier) {
	repo := newMockWorkOrderRepository()
	assetRepo := newMockAssetRepository()
	assetRepo.assets["GEN-001"] = &secondary.AssetRecord{Code: "GEN-001", Brand: "Atlas", Model: "QAS 60", Status: "ready"}
	settings := newMockSettingsRepository()
	notifier := &mockNotifier{}
	return NewWorkOrderService(repo, assetRepo, settings, notifier), repo, settings, notifier
}

func TestCreateWorkOrder(t *testing.T) {
	service, repo, _, notifier := newWorkOrderFixture()

	wo, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
		AssetCode:   "GEN-001",
		Type:        "PM",
		Priority:    "2",
		ETA:         "2025-11-10",
		Description: "500h service",
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}
	if wo.ID == "" {
		t.Error("Expected a generated id")
	}
	if wo.Status != "open" {
		t.Errorf("Expected status open, got %s", wo.Status)
	}
	if wo.ETA != "2025-11-10" {
		t.Errorf("Expected given ETA, got %s", wo.ETA)
	}
	if len(repo.orders) != 1 {
		t.Errorf("Expected 1 stored order, got %d", len(repo.orders))
	}
	if notifier.broadcasts != 1 {
		t.Errorf("Expected 1 broadcast, got %d", notifier.broadcasts)
	}
}

func TestCreateWorkOrder_DefaultsETA(t *testing.T) {
	service, _, settings, _ := newWorkOrderFixture()
	settings.bufferDays = 3
	settings.bufferSet = true
	settings.holidays = []string{"2025-10-28"}

	// Fri 2025-10-24 + 3 working days, with Tue 2025-10-28 a holiday:
	// Mon 27, Wed 29, Thu 30
	wo, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
		AssetCode: "GEN-001",
		Type:      "CM",
		Priority:  "1",
		Today:     "2025-10-24",
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}
	if wo.ETA != "2025-10-30" {
		t.Errorf("Expected defaulted ETA 2025-10-30, got %s", wo.ETA)
	}
}

func TestCreateWorkOrder_UnknownAsset(t *testing.T) {
	service, _, _, _ := newWorkOrderFixture()

	_, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
		AssetCode: "GEN-404",
		Type:      "PM",
		Priority:  "2",
		ETA:       "2025-11-10",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestCreateWorkOrder_InvalidType(t *testing.T) {
	service, repo, _, notifier := newWorkOrderFixture()

	_, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
		AssetCode: "GEN-001",
		Type:      "XX",
		Priority:  "2",
		ETA:       "2025-11-10",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid work order type") {
		t.Errorf("Expected invalid type error, got %v", err)
	}
	if len(repo.orders) != 0 || notifier.broadcasts != 0 {
		t.Error("Rejected order must not be stored or broadcast")
	}
}

func TestCreateWorkOrder_InvalidPriority(t *testing.T) {
	service, _, _, _ := newWorkOrderFixture()

	_, err := service.CreateWorkOrder(context.Background(), primary.CreateWorkOrderRequest{
		AssetCode: "GEN-001",
		Type:      "PM",
		Priority:  "7",
		ETA:       "2025-11-10",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid priority") {
		t.Errorf("Expected invalid priority error, got %v", err)
	}
}

func TestCompleteWorkOrder(t *testing.T) {
	service, repo, _, notifier := newWorkOrderFixture()
	ctx := context.Background()

	wo, err := service.CreateWorkOrder(ctx, primary.CreateWorkOrderRequest{
		AssetCode: "GEN-001",
		Type:      "PM",
		Priority:  "2",
		ETA:       "2025-11-10",
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}

	if err := service.CompleteWorkOrder(ctx, wo.ID); err != nil {
		t.Fatalf("CompleteWorkOrder failed: %v", err)
	}
	if repo.orders[wo.ID].Status != "done" {
		t.Errorf("Expected status done, got %s", repo.orders[wo.ID].Status)
	}
	if repo.orders[wo.ID].CompletedAt == "" {
		t.Error("Expected CompletedAt to be set")
	}
	if notifier.broadcasts != 2 {
		t.Errorf("Expected 2 broadcasts, got %d", notifier.broadcasts)
	}
}

func TestListWorkOrders_Filters(t *testing.T) {
	service, repo, _, _ := newWorkOrderFixture()
	ctx := context.Background()

	repo.orders["w1"] = &secondary.WorkOrderRecord{ID: "w1", AssetCode: "GEN-001", Type: "PM", Priority: "2", ETA: "2025-11-10", Status: "open"}
	repo.orders["w2"] = &secondary.WorkOrderRecord{ID: "w2", AssetCode: "GEN-001", Type: "CM", Priority: "1", ETA: "2025-11-01", Status: "done"}
	repo.orders["w3"] = &secondary.WorkOrderRecord{ID: "w3", AssetCode: "GEN-002", Type: "PM", Priority: "3", ETA: "2025-11-05", Status: "open"}

	open, err := service.ListWorkOrders(ctx, primary.WorkOrderFilters{Status: "open"})
	if err != nil {
		t.Fatalf("ListWorkOrders failed: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("Expected 2 open orders, got %d", len(open))
	}

	forAsset, err := service.ListWorkOrders(ctx, primary.WorkOrderFilters{AssetCode: "GEN-001", Status: "open"})
	if err != nil {
		t.Fatalf("ListWorkOrders failed: %v", err)
	}
	if len(forAsset) != 1 || forAsset[0].ID != "w1" {
		t.Errorf("Expected [w1], got %+v", forAsset)
	}
}

func TestGetWorkOrder_NotFound(t *testing.T) {
	service, _, _, _ := newWorkOrderFixture()

	_, err := service.GetWorkOrder(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got %v", err)
	}
}
