package manage

import (
	"context"
	"errors"

	"go-email-template/internal/domain"
	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/logger"
	"go-email-template/internal/repository"
)

// ancestorRefs 创建时刻快照到的祖先模板引用
type ancestorRefs struct {
	global domain.TemplateRef
	group  domain.TemplateRef
}

// ancestorLinker 在创建 group/business 模板时查找"当时最近的已定义祖先"，
// 把其ID作为回溯引用写入新记录。查不到祖先不是错误，对应引用留空即可。
type ancestorLinker struct {
	repo         repository.EmailTemplateRepository
	businessRepo repository.BusinessRepository
	logger       logger.Logger
}

func newAncestorLinker(repo repository.EmailTemplateRepository, businessRepo repository.BusinessRepository, l logger.Logger) *ancestorLinker {
	return &ancestorLinker{repo: repo, businessRepo: businessRepo, logger: l}
}

// link 按新记录的作用域查找祖先。
// group 记录只快照全局模板；business 记录总是尝试快照全局模板，
// 但只有调用方声明继承时才去快照商家组模板。
func (l *ancestorLinker) link(ctx context.Context, template domain.EmailTemplate) (ancestorRefs, error) {
	var refs ancestorRefs
	if template.Scope.IsGlobal() {
		return refs, nil
	}

	// 全局祖先无论继承与否都尝试记录，纯属追溯信息
	global, err := l.repo.GetActiveByTrigger(ctx, domain.ScopeGlobal, 0, template.TriggerType)
	switch {
	case err == nil:
		refs.global = domain.NewTemplateRef(global.ID)
	case errors.Is(err, errs.ErrTemplateNotFound):
		l.logger.Warn("创建模板时无全局祖先模板",
			logger.String("triggerType", template.TriggerType.String()))
	default:
		return ancestorRefs{}, err
	}

	// 商家组祖先只在调用方声明继承时查找
	if !template.Scope.IsBusiness() || !template.InheritFromParent {
		return refs, nil
	}

	groupID, ok, err := l.businessRepo.GetGroupIDForBusiness(ctx, template.ContextID)
	if err != nil {
		if errors.Is(err, errs.ErrBusinessNotFound) {
			return refs, nil
		}
		return ancestorRefs{}, err
	}
	if !ok {
		return refs, nil
	}

	group, err := l.repo.GetActiveByTrigger(ctx, domain.ScopeGroup, groupID, template.TriggerType)
	switch {
	case err == nil:
		refs.group = domain.NewTemplateRef(group.ID)
	case errors.Is(err, errs.ErrTemplateNotFound):
		l.logger.Warn("创建模板时商家组无祖先模板",
			logger.String("triggerType", template.TriggerType.String()),
			logger.Int64("groupID", groupID))
	default:
		return ancestorRefs{}, err
	}
	return refs, nil
}
