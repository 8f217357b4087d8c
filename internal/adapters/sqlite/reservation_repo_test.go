package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/fleet/internal/adapters/sqlite"
	"github.com/example/fleet/internal/ports/secondary"
)

func reservationRecord(id, assetCode, start, end string) *secondary.ReservationRecord {
	return &secondary.ReservationRecord{
		ID:        id,
		AssetCode: assetCode,
		Customer:  "Acme",
		StartDate: start,
		EndDate:   end,
	}
}

func TestReservationRepository_AddAndGet(t *testing.T) {
	repo := sqlite.NewReservationRepository(sqlite.NewKVStore(setupTestDB(t)))
	ctx := context.Background()

	rec := reservationRecord("res-1", "GEN-001", "2025-10-01", "2025-10-10")
	rec.Comment = "site delivery"
	if err := repo.Add(ctx, rec); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "res-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.AssetCode != "GEN-001" || got.StartDate != "2025-10-01" || got.EndDate != "2025-10-10" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Comment != "site delivery" {
		t.Errorf("Comment = %q, want 'site delivery'", got.Comment)
	}
}

func TestReservationRepository_GetByID_Missing(t *testing.T) {
	repo := sqlite.NewReservationRepository(sqlite.NewKVStore(setupTestDB(t)))

	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestReservationRepository_ListByAsset_InsertionOrder(t *testing.T) {
	repo := sqlite.NewReservationRepository(sqlite.NewKVStore(setupTestDB(t)))
	ctx := context.Background()

	// inserted out of date order on purpose
	for _, rec := range []*secondary.ReservationRecord{
		reservationRecord("res-1", "GEN-001", "2025-11-01", "2025-11-05"),
		reservationRecord("res-2", "GEN-002", "2025-10-01", "2025-10-05"),
		reservationRecord("res-3", "GEN-001", "2025-10-01", "2025-10-05"),
	} {
		if err := repo.Add(ctx, rec); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := repo.ListByAsset(ctx, "GEN-001")
	if err != nil {
		t.Fatalf("ListByAsset failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "res-1" || got[1].ID != "res-3" {
		t.Errorf("expected insertion order res-1, res-3; got %s, %s", got[0].ID, got[1].ID)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 records, got %d", len(all))
	}
}

func TestReservationRepository_Remove_Idempotent(t *testing.T) {
	repo := sqlite.NewReservationRepository(sqlite.NewKVStore(setupTestDB(t)))
	ctx := context.Background()

	if err := repo.Add(ctx, reservationRecord("res-1", "GEN-001", "2025-10-01", "2025-10-10")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := repo.Remove(ctx, "res-1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	// removing again must not error
	if err := repo.Remove(ctx, "res-1"); err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d records", len(all))
	}
}

func TestReservationRepository_MalformedBlobTreatedAsEmpty(t *testing.T) {
	testDB := setupTestDB(t)
	kv := sqlite.NewKVStore(testDB)
	ctx := context.Background()

	if err := kv.Set(ctx, "reservations-store", "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	repo := sqlite.NewReservationRepository(kv)
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d records", len(all))
	}

	// the store must recover: a write replaces the corrupt blob
	if err := repo.Add(ctx, reservationRecord("res-1", "GEN-001", "2025-10-01", "2025-10-10")); err != nil {
		t.Fatalf("Add after corruption failed: %v", err)
	}
	all, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 record after recovery, got %d", len(all))
	}
}

func TestKVStore(t *testing.T) {
	kv := sqlite.NewKVStore(setupTestDB(t))
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set (overwrite) failed: %v", err)
	}

	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if got != "v2" {
		t.Errorf("value = %q, want v2", got)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("expected key gone after Delete")
	}
	// deleting again is a no-op
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
}
