package db

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Seed loads a small demo fleet for local experimentation. Existing rows
// with the same codes are left untouched.
func Seed() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	assets := []struct {
		code, brand, model, serial string
		year                       int
		kva                        float64
		site                       string
	}{
		{"GEN-001", "Atlas Copco", "QAS 60", "AC-2021-0147", 2021, 60, "Depot North"},
		{"GEN-002", "Caterpillar", "DE110", "CAT-2019-8830", 2019, 110, "Depot North"},
		{"GEN-003", "Himoinsa", "HFW-75", "HIM-2022-1202", 2022, 75, "Depot South"},
	}

	for _, a := range assets {
		_, err := database.Exec(`
			INSERT OR IGNORE INTO assets (code, brand, model, serial_number, year, kva, status, site)
			VALUES (?, ?, ?, ?, ?, ?, 'ready', ?)`,
			a.code, a.brand, a.model, a.serial, a.year, a.kva, a.site)
		if err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", a.code, err)
		}
	}

	log.WithField("assets", len(assets)).Debug("Seeded demo fleet")
	return nil
}
