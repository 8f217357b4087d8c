package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/fleet/internal/ports/secondary"
)

// Ensure the mocks implement the secondary ports
var (
	_ secondary.ReservationRepository = (*mockReservationRepository)(nil)
	_ secondary.SettingsRepository    = (*mockSettingsRepository)(nil)
	_ secondary.AssetRepository       = (*mockAssetRepository)(nil)
	_ secondary.WorkOrderRepository   = (*mockWorkOrderRepository)(nil)
	_ secondary.ChangeNotifier        = (*mockNotifier)(nil)
)

// mockNotifier implements secondary.ChangeNotifier for testing.
type mockNotifier struct {
	mu         sync.Mutex
	broadcasts int
}

func (m *mockNotifier) Broadcast() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broadcasts++
}

// mockReservationRepository implements secondary.ReservationRepository for
// testing. Records live in a slice so insertion order is preserved the way
// the real repository preserves it; like the real repository, every
// operation is atomic behind a lock.
type mockReservationRepository struct {
	mu      sync.RWMutex
	records []*secondary.ReservationRecord
	addErr  error
	listErr error
	getErr  error
	rmErr   error
}

func newMockReservationRepository() *mockReservationRepository {
	return &mockReservationRepository{}
}

func (m *mockReservationRepository) Add(ctx context.Context, r *secondary.ReservationRecord) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *mockReservationRepository) Remove(ctx context.Context, id string) error {
	if m.rmErr != nil {
		return m.rmErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.records[:0]
	for _, r := range m.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func (m *mockReservationRepository) GetByID(ctx context.Context, id string) (*secondary.ReservationRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockReservationRepository) ListByAsset(ctx context.Context, assetCode string) ([]*secondary.ReservationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*secondary.ReservationRecord
	for _, r := range m.records {
		if r.AssetCode == assetCode {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReservationRepository) ListAll(ctx context.Context) ([]*secondary.ReservationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*secondary.ReservationRecord(nil), m.records...), nil
}

// count returns the stored record count.
func (m *mockReservationRepository) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// mockSettingsRepository implements secondary.SettingsRepository for testing.
type mockSettingsRepository struct {
	bufferDays    int
	bufferSet     bool
	holidays      []string
	getBufferErr  error
	setBufferErr  error
	getHolidayErr error
	setHolidayErr error
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{}
}

func (m *mockSettingsRepository) GetBufferDays(ctx context.Context) (int, bool, error) {
	if m.getBufferErr != nil {
		return 0, false, m.getBufferErr
	}
	return m.bufferDays, m.bufferSet, nil
}

func (m *mockSettingsRepository) SetBufferDays(ctx context.Context, days int) error {
	if m.setBufferErr != nil {
		return m.setBufferErr
	}
	m.bufferDays = days
	m.bufferSet = true
	return nil
}

func (m *mockSettingsRepository) GetHolidays(ctx context.Context) ([]string, error) {
	if m.getHolidayErr != nil {
		return nil, m.getHolidayErr
	}
	return append([]string(nil), m.holidays...), nil
}

func (m *mockSettingsRepository) SetHolidays(ctx context.Context, dates []string) error {
	if m.setHolidayErr != nil {
		return m.setHolidayErr
	}
	m.holidays = append([]string(nil), dates...)
	return nil
}

// mockAssetRepository implements secondary.AssetRepository for testing.
type mockAssetRepository struct {
	assets    map[string]*secondary.AssetRecord
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	existsErr error
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{assets: make(map[string]*secondary.AssetRecord)}
}

func (m *mockAssetRepository) Create(ctx context.Context, a *secondary.AssetRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.assets[a.Code] = a
	return nil
}

func (m *mockAssetRepository) GetByCode(ctx context.Context, code string) (*secondary.AssetRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.assets[code], nil
}

func (m *mockAssetRepository) List(ctx context.Context) ([]*secondary.AssetRecord, error) {
	var result []*secondary.AssetRecord
	for _, a := range m.assets {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAssetRepository) UpdateStatus(ctx context.Context, code, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if a, ok := m.assets[code]; ok {
		a.Status = status
	}
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, code string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.assets, code)
	return nil
}

func (m *mockAssetRepository) Exists(ctx context.Context, code string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.assets[code]
	return ok, nil
}

// mockWorkOrderRepository implements secondary.WorkOrderRepository for testing.
type mockWorkOrderRepository struct {
	orders      map[string]*secondary.WorkOrderRecord
	createErr   error
	getErr      error
	listErr     error
	completeErr error
	deleteErr   error
}

func newMockWorkOrderRepository() *mockWorkOrderRepository {
	return &mockWorkOrderRepository{orders: make(map[string]*secondary.WorkOrderRecord)}
}

func (m *mockWorkOrderRepository) Create(ctx context.Context, wo *secondary.WorkOrderRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	wo.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.orders[wo.ID] = wo
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, id string) (*secondary.WorkOrderRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.orders[id], nil
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filters secondary.WorkOrderFilters) ([]*secondary.WorkOrderRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.WorkOrderRecord
	for _, wo := range m.orders {
		if filters.AssetCode != "" && wo.AssetCode != filters.AssetCode {
			continue
		}
		if filters.Status != "" && wo.Status != filters.Status {
			continue
		}
		result = append(result, wo)
	}
	return result, nil
}

func (m *mockWorkOrderRepository) Complete(ctx context.Context, id string) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	if wo, ok := m.orders[id]; ok {
		wo.Status = "done"
		wo.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return nil
}

func (m *mockWorkOrderRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.orders, id)
	return nil
}
