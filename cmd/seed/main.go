package main

import (
	"context"
	"log"
	"math"
	"math/rand"

	"github.com/oggyb/modelkit/internal/config"
	"github.com/oggyb/modelkit/internal/db/gormdb"
	domain "github.com/oggyb/modelkit/internal/domain/reading"
	"github.com/oggyb/modelkit/internal/logger"
	readingRepo "github.com/oggyb/modelkit/internal/repository/gorm/reading"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Load application configuration from env/.env.
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("[Seed] Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("[Seed] Failed to build logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck
	zap.ReplaceGlobals(lg)
	lg = lg.Named("seed")

	// Connection info file first, DB_* variables otherwise.
	url, err := cfg.DatabaseURL()
	if err != nil {
		lg.Fatal("Failed to resolve database url", zap.Error(err))
	}

	gormAdapter, err := gormdb.New(url,
		gormdb.WithLogger(logger.Gorm(lg)),
		gormdb.WithSSLMode(cfg.DB.SSLMode),
	)
	if err != nil {
		lg.Fatal("Failed to connect to database", zap.Error(err))
	}
	lg.Info("Connected to database", zap.String("app", cfg.App.Name))

	repo := readingRepo.NewRepository(gormAdapter)

	// 1) AutoMigrate: make sure the readings table exists.
	if err := repo.Migrate(ctx); err != nil {
		lg.Fatal("AutoMigrate failed", zap.Error(err))
	}
	lg.Info("Readings table is up to date")

	// 2) Insert N random readings.
	n := cfg.Seed.Count
	lg.Info("Inserting random readings", zap.Int("count", n))

	saved := make([]*domain.Reading, 0, n)
	for i := 0; i < n; i++ {
		// Use the domain constructor so we respect domain rules.
		rd, err := domain.NewReading(randomSensor(), randomValues())
		if err != nil {
			lg.Fatal("Invalid reading", zap.Int("n", i+1), zap.Error(err))
		}

		if err := repo.Save(ctx, rd); err != nil {
			lg.Fatal("Failed to save reading", zap.Int("n", i+1), zap.Error(err))
		}

		lg.Debug("Created reading",
			zap.Int64("id", rd.ID),
			zap.String("sensor", rd.Sensor),
			zap.Int("channels", len(rd.Values)),
		)
		saved = append(saved, rd)
	}

	// 3) Read every row back through the model proxies and compare.
	for _, want := range saved {
		got, err := repo.Get(ctx, want.ID)
		if err != nil {
			lg.Fatal("Failed to read back reading", zap.Int64("id", want.ID), zap.Error(err))
		}
		if got.Sensor != want.Sensor || !sameValues(got.Values, want.Values) {
			lg.Fatal("Reading changed on round trip",
				zap.Int64("id", want.ID),
				zap.Float64s("saved", want.Values),
				zap.Float64s("loaded", got.Values),
			)
		}
	}
	lg.Info("Verified readings", zap.Int("count", len(saved)))

	// 4) Report the table size and the newest rows.
	latest, total, err := repo.List(ctx, 1, 10)
	if err != nil {
		lg.Fatal("Failed to list readings", zap.Error(err))
	}
	for _, rd := range latest {
		lg.Debug("Latest reading", zap.Int64("id", rd.ID), zap.String("sensor", rd.Sensor))
	}

	lg.Info("Done",
		zap.Int("inserted", n),
		zap.Int64("total", total),
		zap.String("table", readingRepo.ReadingModel{}.TableName()),
	)
}

// sameValues compares channel values loosely; numeric columns may round
// past the 15th significant digit.
func sameValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9*math.Max(1, math.Abs(b[i])) {
			return false
		}
	}
	return true
}

var sensors = []string{"boiler", "intake", "exhaust", "coolant"}

// randomSensor picks one of a few fixed sensor names.
func randomSensor() string {
	return sensors[rand.Intn(len(sensors))]
}

// randomValues generates between 1 and domain.Channels channel values.
func randomValues() []float64 {
	out := make([]float64, rand.Intn(domain.Channels)+1)
	for i := range out {
		out[i] = rand.Float64() * 100
	}
	return out
}
