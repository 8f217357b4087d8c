// Package wire provides dependency injection for the fleet application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	cliadapter "github.com/example/fleet/internal/adapters/cli"
	"github.com/example/fleet/internal/adapters/notify"
	"github.com/example/fleet/internal/adapters/sqlite"
	"github.com/example/fleet/internal/app"
	"github.com/example/fleet/internal/db"
	"github.com/example/fleet/internal/ports/primary"
)

var (
	reservationService  primary.ReservationService
	availabilityService primary.AvailabilityService
	settingsService     primary.SettingsService
	assetService        primary.AssetService
	workOrderService    primary.WorkOrderService
	broadcaster         *notify.Broadcaster
	once                sync.Once
)

// ReservationService returns the singleton ReservationService instance.
func ReservationService() primary.ReservationService {
	once.Do(initServices)
	return reservationService
}

// AvailabilityService returns the singleton AvailabilityService instance.
func AvailabilityService() primary.AvailabilityService {
	once.Do(initServices)
	return availabilityService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// AssetService returns the singleton AssetService instance.
func AssetService() primary.AssetService {
	once.Do(initServices)
	return assetService
}

// WorkOrderService returns the singleton WorkOrderService instance.
func WorkOrderService() primary.WorkOrderService {
	once.Do(initServices)
	return workOrderService
}

// Broadcaster returns the singleton change broadcaster. Subscribers see
// every mutation made through the services above.
func Broadcaster() *notify.Broadcaster {
	once.Do(initServices)
	return broadcaster
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) over the shared DB handle
	kv := sqlite.NewKVStore(database)
	reservationRepo := sqlite.NewReservationRepository(kv)
	settingsRepo := sqlite.NewSettingsRepository(kv)
	assetRepo := sqlite.NewAssetRepository(database)
	workOrderRepo := sqlite.NewWorkOrderRepository(database)

	broadcaster = notify.NewBroadcaster()
	broadcaster.Subscribe(func() {
		log.Debug("store changed")
	})

	// Services (primary ports implementation)
	reservationService = app.NewReservationService(reservationRepo, broadcaster)
	availabilityService = app.NewAvailabilityService(reservationRepo)
	settingsService = app.NewSettingsService(settingsRepo, broadcaster)
	assetService = app.NewAssetService(assetRepo, broadcaster)
	workOrderService = app.NewWorkOrderService(workOrderRepo, assetRepo, settingsRepo, broadcaster)
}

// ReservationAdapter returns a new ReservationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ReservationAdapter() *cliadapter.ReservationAdapter {
	return ReservationAdapterWithOutput(os.Stdout)
}

// ReservationAdapterWithOutput returns a new ReservationAdapter writing to
// the given output. This variant allows testing or alternate destinations.
func ReservationAdapterWithOutput(out io.Writer) *cliadapter.ReservationAdapter {
	once.Do(initServices)
	return cliadapter.NewReservationAdapter(reservationService, out)
}

// AvailabilityAdapter returns a new AvailabilityAdapter writing to stdout.
func AvailabilityAdapter() *cliadapter.AvailabilityAdapter {
	return AvailabilityAdapterWithOutput(os.Stdout)
}

// AvailabilityAdapterWithOutput returns a new AvailabilityAdapter writing to
// the given output.
func AvailabilityAdapterWithOutput(out io.Writer) *cliadapter.AvailabilityAdapter {
	once.Do(initServices)
	return cliadapter.NewAvailabilityAdapter(availabilityService, out)
}
