package main

import (
	"fmt"
	stdhttp "net/http"
	"os"

	"deliverytrack/cmd"
	httpin "deliverytrack/internal/adapters/in/http"
	"deliverytrack/internal/adapters/out/postgres/settingsrepo"
	"deliverytrack/internal/jobs"
	"deliverytrack/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"log/slog"
)

func main() {
	// .env is optional; the environment may already carry the config.
	_ = godotenv.Load(".env")

	configs := cmd.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&settingsrepo.SettingsDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	metrics.Register()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		configs.ShopifyShopDomain,
		configs.DelayScanSchedule,
		app.CreateGetDashboardSummaryQueryHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(
		configs.ShopifyShopDomain,
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateSaveSettingsCommandHandler(),
		app.CreateGetDashboardSummaryQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetSettingsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/api/v1/dashboard", server.GetDashboard)
	e.GET("/api/v1/orders", server.GetOrders)
	e.POST("/api/v1/fulfillments/:id/events", server.UpdateDeliveryStatus)
	e.GET("/api/v1/settings", server.GetSettings)
	e.PUT("/api/v1/settings", server.SaveSettings)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
