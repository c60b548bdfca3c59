package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go-email-template/internal/domain"
	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/sqlx"
	"go-email-template/internal/repository/dao"
)

// EmailTemplateRepository 按作用域分发的模板仓库接口。
// 作用域到具体表的映射收敛在这一层，上层永远不感知表名。
//
//go:generate mockgen -source=./template.go -destination=./mocks/template.mock.go -package=repomocks -typed EmailTemplateRepository
type EmailTemplateRepository interface {
	// GetByID 按主键获取模板，停用记录可见
	GetByID(ctx context.Context, scope domain.TemplateScope, id int64) (domain.EmailTemplate, error)

	// GetActiveByTrigger 获取指定作用域上下文内该触发类型的生效模板
	GetActiveByTrigger(ctx context.Context, scope domain.TemplateScope, contextID int64, triggerType domain.TriggerType) (domain.EmailTemplate, error)

	// List 列出指定作用域上下文的全部模板
	List(ctx context.Context, scope domain.TemplateScope, contextID int64) ([]domain.EmailTemplate, error)

	// Create 创建模板，唯一键冲突返回 errs.ErrTemplateDuplicate
	Create(ctx context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error)

	// Update 部分字段更新，只更新调用方显式提供的字段
	Update(ctx context.Context, scope domain.TemplateScope, id int64, update domain.EmailTemplateUpdate) error

	// Delete 硬删除，作用域合法性由上层保证
	Delete(ctx context.Context, scope domain.TemplateScope, id int64) error
}

type emailTemplateRepository struct {
	globalDAO   dao.EmailTemplateDAO
	groupDAO    dao.EmailTemplateDAO
	businessDAO dao.EmailTemplateDAO
}

func NewEmailTemplateRepository(globalDAO, groupDAO, businessDAO dao.EmailTemplateDAO) EmailTemplateRepository {
	return &emailTemplateRepository{
		globalDAO:   globalDAO,
		groupDAO:    groupDAO,
		businessDAO: businessDAO,
	}
}

// daoOf 作用域到表访问对象的唯一分发点
func (r *emailTemplateRepository) daoOf(scope domain.TemplateScope) (dao.EmailTemplateDAO, error) {
	switch scope {
	case domain.ScopeGlobal:
		return r.globalDAO, nil
	case domain.ScopeGroup:
		return r.groupDAO, nil
	case domain.ScopeBusiness:
		return r.businessDAO, nil
	default:
		return nil, fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, scope)
	}
}

func (r *emailTemplateRepository) GetByID(ctx context.Context, scope domain.TemplateScope, id int64) (domain.EmailTemplate, error) {
	d, err := r.daoOf(scope)
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	entity, err := d.GetByID(ctx, id)
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	return r.toDomain(entity, scope), nil
}

func (r *emailTemplateRepository) GetActiveByTrigger(ctx context.Context, scope domain.TemplateScope, contextID int64, triggerType domain.TriggerType) (domain.EmailTemplate, error) {
	d, err := r.daoOf(scope)
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	entity, err := d.GetActiveByTrigger(ctx, contextID, triggerType.String())
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	return r.toDomain(entity, scope), nil
}

func (r *emailTemplateRepository) List(ctx context.Context, scope domain.TemplateScope, contextID int64) ([]domain.EmailTemplate, error) {
	d, err := r.daoOf(scope)
	if err != nil {
		return nil, err
	}
	entities, err := d.List(ctx, contextID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.EmailTemplate, 0, len(entities))
	for i := range entities {
		result = append(result, r.toDomain(entities[i], scope))
	}
	return result, nil
}

func (r *emailTemplateRepository) Create(ctx context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
	d, err := r.daoOf(template.Scope)
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	created, err := d.Create(ctx, r.toEntity(template))
	if err != nil {
		return domain.EmailTemplate{}, err
	}
	return r.toDomain(created, template.Scope), nil
}

func (r *emailTemplateRepository) Update(ctx context.Context, scope domain.TemplateScope, id int64, update domain.EmailTemplateUpdate) error {
	d, err := r.daoOf(scope)
	if err != nil {
		return err
	}
	return d.Update(ctx, id, r.toUpdateFields(update))
}

func (r *emailTemplateRepository) Delete(ctx context.Context, scope domain.TemplateScope, id int64) error {
	d, err := r.daoOf(scope)
	if err != nil {
		return err
	}
	return d.Delete(ctx, id)
}

// toUpdateFields 只把调用方显式提供的字段放进更新集合
func (r *emailTemplateRepository) toUpdateFields(update domain.EmailTemplateUpdate) map[string]any {
	fields := make(map[string]any)
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Subject != nil {
		fields["subject"] = *update.Subject
	}
	if update.BodyHTML != nil {
		fields["body_html"] = *update.BodyHTML
	}
	if update.BodyText != nil {
		fields["body_text"] = sql.NullString{String: *update.BodyText, Valid: *update.BodyText != ""}
	}
	if update.AvailableVariables != nil {
		fields["available_variables"] = sqlx.NewJsonColumn(*update.AvailableVariables)
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}
	if update.InheritFromParent != nil {
		fields["inherit_from_parent"] = *update.InheritFromParent
	}
	if update.LogoURL != nil {
		fields["logo_url"] = sql.NullString{String: *update.LogoURL, Valid: *update.LogoURL != ""}
	}
	return fields
}

func (r *emailTemplateRepository) toDomain(entity dao.EmailTemplate, scope domain.TemplateScope) domain.EmailTemplate {
	template := domain.EmailTemplate{
		ID:                entity.ID,
		Scope:             scope,
		ContextID:         entity.ContextID,
		TriggerType:       domain.TriggerType(entity.TriggerType),
		Name:              entity.Name,
		Description:       entity.Description,
		Subject:           entity.Subject,
		BodyHTML:          entity.BodyHTML,
		BodyText:          entity.BodyText.String,
		IsActive:          entity.IsActive,
		InheritFromParent: entity.InheritFromParent,
		LogoURL:           entity.LogoURL.String,
		Ctime:             entity.Ctime,
		Utime:             entity.Utime,
	}
	if entity.AvailableVariables.Valid {
		template.AvailableVariables = entity.AvailableVariables.Val
	}
	if entity.GroupTemplateID.Valid {
		template.GroupTemplateRef = domain.NewTemplateRef(entity.GroupTemplateID.Int64)
	}
	if entity.GlobalTemplateID.Valid {
		template.GlobalTemplateRef = domain.NewTemplateRef(entity.GlobalTemplateID.Int64)
	}
	return template
}

func (r *emailTemplateRepository) toEntity(template domain.EmailTemplate) dao.EmailTemplate {
	entity := dao.EmailTemplate{
		ID:                template.ID,
		ContextID:         template.ContextID,
		TriggerType:       template.TriggerType.String(),
		Name:              template.Name,
		Description:       template.Description,
		Subject:           template.Subject,
		BodyHTML:          template.BodyHTML,
		BodyText:          sql.NullString{String: template.BodyText, Valid: template.BodyText != ""},
		IsActive:          template.IsActive,
		InheritFromParent: template.InheritFromParent,
		LogoURL:           sql.NullString{String: template.LogoURL, Valid: template.LogoURL != ""},
	}
	if template.AvailableVariables != nil {
		entity.AvailableVariables = sqlx.NewJsonColumn(template.AvailableVariables)
	}
	if template.GroupTemplateRef.Valid {
		entity.GroupTemplateID = sql.NullInt64{Int64: template.GroupTemplateRef.ID, Valid: true}
	}
	if template.GlobalTemplateRef.Valid {
		entity.GlobalTemplateID = sql.NullInt64{Int64: template.GlobalTemplateRef.ID, Valid: true}
	}
	return entity
}
