package cmd

import (
	"log/slog"
	"time"

	"deliverytrack/internal/adapters/out/cache"
	"deliverytrack/internal/adapters/out/postgres"
	"deliverytrack/internal/adapters/out/postgres/settingsrepo"
	"deliverytrack/internal/adapters/out/shopify"
	"deliverytrack/internal/adapters/out/webhook"
	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	feed         ports.OrderFeed
	settingsRepo ports.SettingsRepository
	sink         ports.NotificationSink
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	client := shopify.NewClient(shopify.Config{
		ShopDomain:  configs.ShopifyShopDomain,
		AccessToken: configs.ShopifyAccessToken,
		APIVersion:  configs.ShopifyAPIVersion,
	}, logger)

	var feed ports.OrderFeed = shopify.NewFeed(client, logger)
	if configs.FeedCacheTTL > time.Duration(0) {
		feed = cache.NewOrderFeedCache(feed, configs.FeedCacheTTL)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		feed:         feed,
		settingsRepo: settingsrepo.NewGormSettingsRepository(gormDB),
		sink:         webhook.NewNotificationSink(configs.NotificationWebhookURL, logger),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.feed, c.settingsRepo, c.sink, c.logger)
}

func (c *CompositionRoot) CreateSaveSettingsCommandHandler() commands.SaveSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.feed, c.settingsRepo)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.feed)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
