package main

import (
	"github.com/asaskevich/EventBus"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"fertistore/cli"
	"fertistore/internal/catalog"
	"fertistore/internal/config"
	"fertistore/internal/ledger"
	"fertistore/internal/session"
	"fertistore/internal/store"
)

func main() {
	config.LoadEnv()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var kv store.KV
	bolt, err := store.OpenBolt(config.GetEnv("DATA_FILE", "fertistore.db"), logger)
	if err != nil {
		// No writable data file: run on transient state rather than refuse
		// to start.
		logger.Warn("data file unavailable, state will not persist", zap.Error(err))
		kv = store.NewMemoryStore()
	} else {
		defer bolt.Close()
		kv = bolt
	}

	bus := EventBus.New()

	products := catalog.NewRepository(kv, bus, logger)
	if n, err := cast.ToIntE(config.GetEnv("LOW_STOCK_THRESHOLD", "")); err == nil {
		products.SetLowStockThreshold(n)
	}
	products.Seed()

	sales := ledger.NewService(kv, products, bus, logger)
	gate := session.NewGate(kv, config.GetEnv("ADMIN_PASSWORD", "admin123"), logger)
	phone := config.GetEnv("STORE_PHONE", "1234567890")

	cli.NewShell(products, sales, gate, bus, phone, logger).Run()
}
