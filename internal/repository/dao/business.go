package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-email-template/internal/errs"
	"gorm.io/gorm"
)

// Business 商家表的只读投影，本服务只关心商家到商家组的归属
type Business struct {
	ID      int64         `gorm:"primaryKey;comment:'商家ID'"`
	GroupID sql.NullInt64 `gorm:"column:business_group_id;index:idx_business_group;comment:'所属商家组ID，可为空'"`
}

func (Business) TableName() string {
	return "businesses"
}

type BusinessDAO interface {
	// GetGroupID 查询商家所属的商家组ID，商家不存在映射为 errs.ErrBusinessNotFound，
	// 商家存在但未归属任何组时 Valid 为 false
	GetGroupID(ctx context.Context, businessID int64) (sql.NullInt64, error)
}

type businessDAO struct {
	db *gorm.DB
}

func NewBusinessDAO(db *gorm.DB) BusinessDAO {
	return &businessDAO{db: db}
}

func (d *businessDAO) GetGroupID(ctx context.Context, businessID int64) (sql.NullInt64, error) {
	var business Business
	err := d.db.WithContext(ctx).Where("id = ?", businessID).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sql.NullInt64{}, fmt.Errorf("%w: businessID=%d", errs.ErrBusinessNotFound, businessID)
		}
		return sql.NullInt64{}, fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
	}
	return business.GroupID, nil
}
