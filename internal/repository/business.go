package repository

import (
	"context"

	"go-email-template/internal/repository/dao"
)

// BusinessRepository 商家到商家组的归属查询，解析引擎和祖先链接器共用
//
//go:generate mockgen -source=./business.go -destination=./mocks/business.mock.go -package=repomocks -typed BusinessRepository
type BusinessRepository interface {
	// GetGroupIDForBusiness 返回商家所属的商家组ID。
	// 商家不存在返回 errs.ErrBusinessNotFound，商家存在但无归属组时返回 (0, false, nil)
	GetGroupIDForBusiness(ctx context.Context, businessID int64) (int64, bool, error)
}

type businessRepository struct {
	dao dao.BusinessDAO
}

func NewBusinessRepository(dao dao.BusinessDAO) BusinessRepository {
	return &businessRepository{dao: dao}
}

func (r *businessRepository) GetGroupIDForBusiness(ctx context.Context, businessID int64) (int64, bool, error) {
	groupID, err := r.dao.GetGroupID(ctx, businessID)
	if err != nil {
		return 0, false, err
	}
	if !groupID.Valid {
		return 0, false, nil
	}
	return groupID.Int64, true, nil
}
