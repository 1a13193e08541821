package db

import (
	"fmt"

	"gorm.io/gorm"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
)

type GormHistoryGateway struct {
	DB *gorm.DB
}

var _ HistoryGateway = (*GormHistoryGateway)(nil)
var _ HealthDBGateway = (*GormHistoryGateway)(nil)

func NewGormHistoryGateway(db *gorm.DB) *GormHistoryGateway {
	return &GormHistoryGateway{DB: db}
}

func (gateway *GormHistoryGateway) Save(record entity.RefreshRecord) (*entity.RefreshRecord, error) {
	if err := gateway.DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save refresh record: %w", err)
	}
	return &record, nil
}

func (gateway *GormHistoryGateway) FindAll(page int, size int) ([]entity.RefreshRecord, int64, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var total int64
	if err := gateway.DB.Model(&entity.RefreshRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count refresh records: %w", err)
	}

	var records []entity.RefreshRecord
	err := gateway.DB.
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find refresh records: %w", err)
	}

	return records, total, nil
}

// Prune keeps only the newest keepLast records.
func (gateway *GormHistoryGateway) Prune(keepLast int) (int64, error) {
	if keepLast <= 0 {
		return 0, nil
	}

	subQuery := gateway.DB.
		Model(&entity.RefreshRecord{}).
		Select("id").
		Order("created_at DESC").
		Limit(keepLast)

	result := gateway.DB.
		Where("id NOT IN (?)", subQuery).
		Delete(&entity.RefreshRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune refresh records: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (gateway *GormHistoryGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	if err = sqlDB.Ping(); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
