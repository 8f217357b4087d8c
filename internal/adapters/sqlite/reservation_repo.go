package sqlite

import (
	"context"
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/example/fleet/internal/ports/secondary"
)

// reservationsKey is the stable key the reservation set is stored under.
const reservationsKey = "reservations-store"

// ReservationRepository implements secondary.ReservationRepository over the
// key/value substrate. The whole reservation set is one JSON blob; every
// mutation is a read-modify-write of the full set behind the write lock, so
// the overlap check in the service layer and the write it guards are atomic
// with respect to each other.
type ReservationRepository struct {
	kv *KVStore
	mu sync.RWMutex
}

// NewReservationRepository creates a new blob-backed reservation repository.
func NewReservationRepository(kv *KVStore) *ReservationRepository {
	return &ReservationRepository{kv: kv}
}

// load reads the full reservation set. Missing or malformed blobs yield an
// empty set: external storage drift must never take the scheduler down.
func (r *ReservationRepository) load(ctx context.Context) ([]*secondary.ReservationRecord, error) {
	raw, ok, err := r.kv.Get(ctx, reservationsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []*secondary.ReservationRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.WithError(err).WithField("key", reservationsKey).Warn("malformed reservation blob, treating as empty")
		return nil, nil
	}
	return records, nil
}

func (r *ReservationRepository) save(ctx context.Context, records []*secondary.ReservationRecord) error {
	if records == nil {
		records = []*secondary.ReservationRecord{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, reservationsKey, string(blob))
}

// Add persists a new reservation.
func (r *ReservationRepository) Add(ctx context.Context, rec *secondary.ReservationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, rec)
	return r.save(ctx, records)
}

// Remove deletes a reservation by id. Removing an unknown id is a no-op.
func (r *ReservationRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return r.save(ctx, kept)
}

// GetByID retrieves a reservation by id, or nil when absent.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*secondary.ReservationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

// ListByAsset retrieves the reservations of one asset in insertion order.
func (r *ReservationRepository) ListByAsset(ctx context.Context, assetCode string) ([]*secondary.ReservationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*secondary.ReservationRecord
	for _, rec := range records {
		if rec.AssetCode == assetCode {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListAll retrieves every reservation in insertion order.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]*secondary.ReservationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load(ctx)
}
