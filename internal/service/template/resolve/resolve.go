package resolve

import (
	"context"
	"errors"
	"fmt"

	"go-email-template/internal/domain"
	"go-email-template/internal/errs"
	"go-email-template/internal/repository"
)

// Service 解析引擎：给定触发类型和调用上下文，从最特化到最不特化
// 逐级查找，返回唯一的生效模板。
// 各级不做字段级合并，生效模板永远是某一个作用域的完整记录。
//
//go:generate mockgen -source=./resolve.go -destination=./mocks/resolve.mock.go -package=resolvemocks -typed Service
type Service interface {
	// Resolve 解析生效模板。businessID/groupID 为 0 表示调用方未提供，
	// 两者都未提供时只查全局作用域。全部作用域落空返回 errs.ErrTemplateNotFound。
	Resolve(ctx context.Context, triggerType domain.TriggerType, businessID, groupID int64) (domain.ResolvedTemplate, error)
}

type resolveService struct {
	repo         repository.EmailTemplateRepository
	businessRepo repository.BusinessRepository
}

func NewService(repo repository.EmailTemplateRepository, businessRepo repository.BusinessRepository) Service {
	return &resolveService{repo: repo, businessRepo: businessRepo}
}

func (s *resolveService) Resolve(ctx context.Context, triggerType domain.TriggerType, businessID, groupID int64) (domain.ResolvedTemplate, error) {
	if !triggerType.IsValid() {
		return domain.ResolvedTemplate{}, fmt.Errorf("%w: 触发类型 %s", errs.ErrInvalidParameter, triggerType)
	}

	// 1. 商家作用域。停用和缺失等价，都继续回落；
	// 继承标记为 true 时即便自身有内容也不采用。
	if businessID > 0 {
		template, err := s.repo.GetActiveByTrigger(ctx, domain.ScopeBusiness, businessID, triggerType)
		switch {
		case err == nil && !template.InheritFromParent:
			return domain.ResolvedTemplate{Template: template, Scope: domain.ScopeBusiness}, nil
		case err != nil && !errors.Is(err, errs.ErrTemplateNotFound):
			return domain.ResolvedTemplate{}, err
		}

		// 回落商家组：优先用商家档案里的归属组，查不到再用调用方提供的组ID
		gid, ok, err := s.businessRepo.GetGroupIDForBusiness(ctx, businessID)
		if err != nil && !errors.Is(err, errs.ErrBusinessNotFound) {
			return domain.ResolvedTemplate{}, err
		}
		if ok {
			groupID = gid
		}
	}

	// 2. 商家组作用域
	if groupID > 0 {
		template, err := s.repo.GetActiveByTrigger(ctx, domain.ScopeGroup, groupID, triggerType)
		switch {
		case err == nil && !template.InheritFromParent:
			return domain.ResolvedTemplate{Template: template, Scope: domain.ScopeGroup}, nil
		case err != nil && !errors.Is(err, errs.ErrTemplateNotFound):
			return domain.ResolvedTemplate{}, err
		}
	}

	// 3. 全局作用域是终点，这里再落空就是整体 NotFound
	template, err := s.repo.GetActiveByTrigger(ctx, domain.ScopeGlobal, 0, triggerType)
	if err != nil {
		return domain.ResolvedTemplate{}, err
	}
	return domain.ResolvedTemplate{Template: template, Scope: domain.ScopeGlobal}, nil
}
