package settingsrepo

import (
	"context"
	"errors"

	"deliverytrack/internal/core/domain/model/settings"
	"deliverytrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings snapshot for a shop.
// A missing row yields the documented defaults, not an error; missing
// columns are replaced field by field.
func (r *GormSettingsRepository) Get(ctx context.Context, shop string) (settings.Settings, error) {
	if shop == "" {
		return settings.Settings{}, errs.NewValueIsRequiredError("shop")
	}

	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "shop = ?", shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, err
	}

	return toDomain(dto), nil
}

// Save persists the full settings snapshot for a shop, replacing any
// previous row.
func (r *GormSettingsRepository) Save(ctx context.Context, shop string, snapshot settings.Settings) error {
	if shop == "" {
		return errs.NewValueIsRequiredError("shop")
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(shop, snapshot)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
