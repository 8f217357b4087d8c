package sqlite

import (
	"context"
	"encoding/json"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Stable keys for scheduler configuration.
const (
	holidaysKey   = "holidays-store"
	bufferDaysKey = "buffer-days"
)

// SettingsRepository implements secondary.SettingsRepository over the
// key/value substrate.
type SettingsRepository struct {
	kv *KVStore
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(kv *KVStore) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

// GetBufferDays returns the configured buffer and whether it was set.
// An unparseable stored value counts as unset.
func (r *SettingsRepository) GetBufferDays(ctx context.Context) (int, bool, error) {
	raw, ok, err := r.kv.Get(ctx, bufferDaysKey)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.WithField("value", raw).Warn("malformed buffer-days value, using default")
		return 0, false, nil
	}
	return n, true, nil
}

// SetBufferDays persists the buffer.
func (r *SettingsRepository) SetBufferDays(ctx context.Context, days int) error {
	return r.kv.Set(ctx, bufferDaysKey, strconv.Itoa(days))
}

// GetHolidays returns the stored holiday dates. Missing or malformed state
// yields an empty list.
func (r *SettingsRepository) GetHolidays(ctx context.Context) ([]string, error) {
	raw, ok, err := r.kv.Get(ctx, holidaysKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		log.WithError(err).WithField("key", holidaysKey).Warn("malformed holiday blob, treating as empty")
		return nil, nil
	}
	return dates, nil
}

// SetHolidays replaces the holiday list wholesale.
func (r *SettingsRepository) SetHolidays(ctx context.Context, dates []string) error {
	if dates == nil {
		dates = []string{}
	}
	blob, err := json.Marshal(dates)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, holidaysKey, string(blob))
}
