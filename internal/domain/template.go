package domain

import (
	"fmt"

	"go-email-template/internal/errs"
)

// TemplateScope 模板作用域，特化程度 business > group > global
type TemplateScope string

const (
	ScopeGlobal   TemplateScope = "global"   // 平台级兜底模板
	ScopeGroup    TemplateScope = "group"    // 商家组级模板
	ScopeBusiness TemplateScope = "business" // 单个商家级模板
)

func (s TemplateScope) String() string {
	return string(s)
}

func (s TemplateScope) IsGlobal() bool {
	return s == ScopeGlobal
}

func (s TemplateScope) IsGroup() bool {
	return s == ScopeGroup
}

func (s TemplateScope) IsBusiness() bool {
	return s == ScopeBusiness
}

func (s TemplateScope) IsValid() bool {
	switch s {
	case ScopeGlobal, ScopeGroup, ScopeBusiness:
		return true
	default:
		return false
	}
}

// TriggerType 触发邮件的事件类型
type TriggerType string

const (
	TriggerUserRegistration  TriggerType = "user_registration"   // 用户注册
	TriggerOrderConfirmation TriggerType = "order_confirmation"  // 订单确认
	TriggerOrderStatusChange TriggerType = "order_status_change" // 订单状态变更
)

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsValid() bool {
	switch t {
	case TriggerUserRegistration, TriggerOrderConfirmation, TriggerOrderStatusChange:
		return true
	default:
		return false
	}
}

// TemplateRef 指向祖先模板的回溯引用。
// 创建时一次性写入，记录的是"创建那一刻存在的祖先"，之后不随祖先变化而更新。
// 用显式的 Valid 标记替代哨兵零值，避免被误当成活引用去"修复"。
type TemplateRef struct {
	ID    int64
	Valid bool
}

func NewTemplateRef(id int64) TemplateRef {
	return TemplateRef{ID: id, Valid: true}
}

// EmailTemplate 某一作用域下的邮件模板记录
type EmailTemplate struct {
	ID          int64
	Scope       TemplateScope
	ContextID   int64 // group 作用域为商家组ID，business 作用域为商家ID，global 作用域恒为 0
	TriggerType TriggerType

	Name        string
	Description string

	Subject            string
	BodyHTML           string
	BodyText           string // 可选的纯文本内容
	AvailableVariables []string

	IsActive bool
	// InheritFromParent 为 true 时本记录不参与解析，转而使用父作用域的生效模板。
	// 仅对 group/business 作用域有意义，切换该标记不清空已有内容。
	InheritFromParent bool

	// 创建时快照的祖先引用，仅用于追溯，解析时不使用
	GroupTemplateRef  TemplateRef
	GlobalTemplateRef TemplateRef

	LogoURL string

	Ctime int64
	Utime int64
}

// Validate 校验创建模板所需的字段
func (t EmailTemplate) Validate() error {
	if !t.Scope.IsValid() {
		return fmt.Errorf("%w: scope=%s", errs.ErrUnknownScope, t.Scope)
	}
	if !t.TriggerType.IsValid() {
		return fmt.Errorf("%w: 触发类型 %s", errs.ErrInvalidParameter, t.TriggerType)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: 模板名称不能为空", errs.ErrInvalidParameter)
	}
	if t.Subject == "" {
		return fmt.Errorf("%w: 邮件主题不能为空", errs.ErrInvalidParameter)
	}
	if t.BodyHTML == "" {
		return fmt.Errorf("%w: HTML内容不能为空", errs.ErrInvalidParameter)
	}
	if !t.Scope.IsGlobal() && t.ContextID <= 0 {
		return fmt.Errorf("%w: %s 作用域必须携带上下文ID", errs.ErrInvalidParameter, t.Scope)
	}
	return nil
}

// EmailTemplateUpdate 部分字段更新，nil 表示调用方未提供该字段
type EmailTemplateUpdate struct {
	Name               *string
	Description        *string
	Subject            *string
	BodyHTML           *string
	BodyText           *string
	AvailableVariables *[]string
	IsActive           *bool
	InheritFromParent  *bool
	LogoURL            *string
}

// IsZero 没有任何字段需要更新
func (u EmailTemplateUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil && u.Subject == nil &&
		u.BodyHTML == nil && u.BodyText == nil && u.AvailableVariables == nil &&
		u.IsActive == nil && u.InheritFromParent == nil && u.LogoURL == nil
}

// ResolvedTemplate 解析结果：唯一的生效模板及其来源作用域
type ResolvedTemplate struct {
	Template EmailTemplate
	// Scope 生效模板实际来自哪个作用域
	Scope TemplateScope
}
