package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garment-geek/core/loader"
	"garment-geek/core/logger"
	"garment-geek/core/metrics"
	"garment-geek/core/middleware/auth"
	"garment-geek/core/middleware/rayid"
	"garment-geek/core/storage"
	"garment-geek/feature/garment"
	"garment-geek/feature/order"
	"garment-geek/feature/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "garment-geek/docs/swagger"
)

// @title Garment Geek API
// @version 1.0
// @description Catalog search and ordering for Garment Geek.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server, loads the inventory and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if err := rt.migrate(); err != nil {
			logg.Fatal("Failed to prepare database", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Storage.Timeout())
		if err := storage.EnsureBucket(ctx, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region); err != nil {
			logg.Warn("Storage bucket unavailable, orders will fail until it is reachable", zap.Error(err))
		}
		cancel()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(reg)

		catalog, err := rt.catalog(m)
		if err != nil {
			logg.Fatal("Failed to create catalog", zap.Error(err))
		}
		if _, err := catalog.Inventory(context.Background()); err != nil {
			logg.Fatal("Failed to load inventory", zap.Error(err))
		}

		sessions := session.NewStore(rt.cfg.Order.SessionTTL())
		orders := order.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Order, rt.orders(), catalog, sessions, logg, m)

		app := fiber.New(fiber.Config{
			AppName:               rt.cfg.Server.AppName,
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(garment.NewFeature(catalog, sessions))
		mgr.Register(order.NewFeature(orders))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler(reg))

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		stopSweep := make(chan struct{})
		go sweepSessions(sessions, rt.cfg.Order.SessionTTL(), stopSweep, logg)

		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.String("catalog", rt.cfg.Catalog.Source),
				zap.Bool("auth", rt.cfg.Server.AuthEnabled()),
			)
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		close(stopSweep)
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

// sweepSessions drops expired shopper sessions until stop is closed.
func sweepSessions(store *session.Store, ttl time.Duration, stop <-chan struct{}, logg *zap.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logg.Debug("Expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
