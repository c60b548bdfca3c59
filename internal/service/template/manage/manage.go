package manage

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go-email-template/internal/domain"
	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/logger"
	"go-email-template/internal/repository"
	"go-email-template/internal/service/asset"
)

const maxLogoSizeBytes = 5 * 1024 * 1024

// EmailTemplateService 按作用域编排模板增删改查的服务接口
//
//go:generate mockgen -source=./manage.go -destination=./mocks/manage.mock.go -package=managemocks -typed EmailTemplateService
type EmailTemplateService interface {
	// ListTemplates 列出指定作用域上下文的全部模板，含停用记录
	ListTemplates(ctx context.Context, scope domain.TemplateScope, contextID int64) ([]domain.EmailTemplate, error)

	// GetTemplateByID 按ID获取模板
	GetTemplateByID(ctx context.Context, scope domain.TemplateScope, id int64) (domain.EmailTemplate, error)

	// GetTemplateByTrigger 获取指定作用域上下文内该触发类型的生效模板
	GetTemplateByTrigger(ctx context.Context, scope domain.TemplateScope, contextID int64, triggerType domain.TriggerType) (domain.EmailTemplate, error)

	// CreateTemplate 创建模板并快照祖先引用
	CreateTemplate(ctx context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error)

	// UpdateTemplate 部分字段更新，只动调用方显式提供的字段
	UpdateTemplate(ctx context.Context, scope domain.TemplateScope, id int64, update domain.EmailTemplateUpdate) (domain.EmailTemplate, error)

	// DeleteTemplate 删除模板，全局作用域无条件拒绝
	DeleteTemplate(ctx context.Context, scope domain.TemplateScope, id int64) error

	// UploadLogo 上传模板Logo并把URL写回模板记录
	UploadLogo(ctx context.Context, scope domain.TemplateScope, id int64, file LogoFile) (domain.EmailTemplate, error)

	// RemoveLogo 清除模板Logo，外部存储删除失败只告警不阻断
	RemoveLogo(ctx context.Context, scope domain.TemplateScope, id int64) error
}

// LogoFile 上传的Logo文件
type LogoFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type templateService struct {
	repo       repository.EmailTemplateRepository
	linker     *ancestorLinker
	assetStore asset.Store
	nextID     func() (uint64, error)
	logger     logger.Logger
}

func NewEmailTemplateService(
	repo repository.EmailTemplateRepository,
	businessRepo repository.BusinessRepository,
	assetStore asset.Store,
	nextID func() (uint64, error),
	l logger.Logger,
) EmailTemplateService {
	return &templateService{
		repo:       repo,
		linker:     newAncestorLinker(repo, businessRepo, l),
		assetStore: assetStore,
		nextID:     nextID,
		logger:     l,
	}
}

func (t *templateService) ListTemplates(ctx context.Context, scope domain.TemplateScope, contextID int64) ([]domain.EmailTemplate, error) {
	if err := t.checkScopeContext(scope, contextID); err != nil {
		return nil, err
	}
	return t.repo.List(ctx, scope, contextID)
}

func (t *templateService) GetTemplateByID(ctx context.Context, scope domain.TemplateScope, id int64) (domain.EmailTemplate, error) {
	if !scope.IsValid() {
		return domain.EmailTemplate{}, fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, scope)
	}
	if id <= 0 {
		return domain.EmailTemplate{}, fmt.Errorf("%w: 模板ID必须大于0", errs.ErrInvalidParameter)
	}
	return t.repo.GetByID(ctx, scope, id)
}

func (t *templateService) GetTemplateByTrigger(ctx context.Context, scope domain.TemplateScope, contextID int64, triggerType domain.TriggerType) (domain.EmailTemplate, error) {
	if err := t.checkScopeContext(scope, contextID); err != nil {
		return domain.EmailTemplate{}, err
	}
	if !triggerType.IsValid() {
		return domain.EmailTemplate{}, fmt.Errorf("%w: 触发类型 %s", errs.ErrInvalidParameter, triggerType)
	}
	return t.repo.GetActiveByTrigger(ctx, scope, contextID, triggerType)
}

func (t *templateService) CreateTemplate(ctx context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
	if err := template.Validate(); err != nil {
		return domain.EmailTemplate{}, err
	}

	// 全局模板没有上下文也没有继承语义
	if template.Scope.IsGlobal() {
		template.ContextID = 0
		template.InheritFromParent = false
	}

	refs, err := t.linker.link(ctx, template)
	if err != nil {
		return domain.EmailTemplate{}, fmt.Errorf("查找祖先模板失败: %w", err)
	}
	template.GlobalTemplateRef = refs.global
	template.GroupTemplateRef = refs.group

	id, err := t.nextID()
	if err != nil {
		return domain.EmailTemplate{}, fmt.Errorf("生成模板ID失败: %w", err)
	}
	template.ID = int64(id)

	return t.repo.Create(ctx, template)
}

func (t *templateService) UpdateTemplate(ctx context.Context, scope domain.TemplateScope, id int64, update domain.EmailTemplateUpdate) (domain.EmailTemplate, error) {
	if !scope.IsValid() {
		return domain.EmailTemplate{}, fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, scope)
	}
	// 全局模板没有继承语义
	if scope.IsGlobal() && update.InheritFromParent != nil {
		return domain.EmailTemplate{}, fmt.Errorf("%w: 全局模板不支持继承标记", errs.ErrInvalidParameter)
	}
	// 没有任何字段要更新时返回当前记录
	if update.IsZero() {
		return t.repo.GetByID(ctx, scope, id)
	}
	if err := t.repo.Update(ctx, scope, id, update); err != nil {
		return domain.EmailTemplate{}, err
	}
	return t.repo.GetByID(ctx, scope, id)
}

func (t *templateService) DeleteTemplate(ctx context.Context, scope domain.TemplateScope, id int64) error {
	if !scope.IsValid() {
		return fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, scope)
	}
	// 全局模板是终极兜底，只能停用
	if scope.IsGlobal() {
		return fmt.Errorf("%w: id=%d", errs.ErrGlobalTemplateImmutable, id)
	}
	return t.repo.Delete(ctx, scope, id)
}

func (t *templateService) UploadLogo(ctx context.Context, scope domain.TemplateScope, id int64, file LogoFile) (domain.EmailTemplate, error) {
	if err := validateLogoFile(file); err != nil {
		return domain.EmailTemplate{}, err
	}

	// 先确认模板存在，避免为不存在的模板留下孤儿对象
	if _, err := t.GetTemplateByID(ctx, scope, id); err != nil {
		return domain.EmailTemplate{}, err
	}

	path := logoPath(scope, id, file.Name)
	logoURL, err := t.assetStore.Upload(ctx, path, file.ContentType, file.Data)
	if err != nil {
		return domain.EmailTemplate{}, fmt.Errorf("%w: %w", errs.ErrLogoUploadFailed, err)
	}

	if err := t.repo.Update(ctx, scope, id, domain.EmailTemplateUpdate{LogoURL: &logoURL}); err != nil {
		return domain.EmailTemplate{}, err
	}
	// 回读落库后的记录，调用方拿到的 utime 才是真实值
	return t.repo.GetByID(ctx, scope, id)
}

func (t *templateService) RemoveLogo(ctx context.Context, scope domain.TemplateScope, id int64) error {
	template, err := t.GetTemplateByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if template.LogoURL == "" {
		return nil
	}

	// 外部存储的清理是尽力而为，失败只留告警
	if path := objectPathOf(template.LogoURL); path != "" {
		if err := t.assetStore.Delete(ctx, path); err != nil {
			t.logger.Warn("删除Logo对象失败",
				logger.String("logoURL", template.LogoURL),
				logger.Error(err))
		}
	}

	empty := ""
	return t.repo.Update(ctx, scope, id, domain.EmailTemplateUpdate{LogoURL: &empty})
}

func (t *templateService) checkScopeContext(scope domain.TemplateScope, contextID int64) error {
	if !scope.IsValid() {
		return fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, scope)
	}
	if !scope.IsGlobal() && contextID <= 0 {
		return fmt.Errorf("%w: %s 作用域必须携带上下文ID", errs.ErrInvalidParameter, scope)
	}
	if scope.IsGlobal() && contextID != 0 {
		return fmt.Errorf("%w: 全局作用域不接受上下文ID", errs.ErrInvalidParameter)
	}
	return nil
}

func validateLogoFile(file LogoFile) error {
	if len(file.Data) == 0 {
		return fmt.Errorf("%w: 未提供Logo文件", errs.ErrInvalidParameter)
	}
	if len(file.Data) > maxLogoSizeBytes {
		return fmt.Errorf("%w: Logo文件超过5MB上限", errs.ErrInvalidParameter)
	}
	switch file.ContentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif":
		return nil
	default:
		return fmt.Errorf("%w: 不支持的Logo文件类型 %s", errs.ErrInvalidParameter, file.ContentType)
	}
}

// logoPath 生成对象存储内的路径：email-templates/<scope>/<templateID>/logo-<时间戳>-<随机串><扩展名>
func logoPath(scope domain.TemplateScope, templateID int64, fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("email-templates/%s/%d/logo-%d-%s%s",
		scope, templateID, time.Now().UnixMilli(), randString(7), ext)
}

// objectPathOf 从公开URL还原对象路径
func objectPathOf(logoURL string) string {
	u, err := url.Parse(logoURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

const randLetters = "abcdefghijklmnopqrstuvwxyz0123456789"

func randString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(randLetters[rand.Intn(len(randLetters))])
	}
	return sb.String()
}
