//go:build unit

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go-email-template/internal/errs"
)

func TestEmailTemplate_Validate(t *testing.T) {
	t.Parallel()

	base := EmailTemplate{
		Scope:       ScopeGroup,
		ContextID:   3,
		TriggerType: TriggerUserRegistration,
		Name:        "欢迎邮件",
		Subject:     "欢迎注册",
		BodyHTML:    "<p>您好</p>",
	}

	tests := []struct {
		name    string
		mutate  func(t *EmailTemplate)
		wantErr error
	}{
		{
			name:   "合法的商家组模板",
			mutate: func(*EmailTemplate) {},
		},
		{
			name: "合法的全局模板",
			mutate: func(t *EmailTemplate) {
				t.Scope = ScopeGlobal
				t.ContextID = 0
			},
		},
		{
			name: "未知作用域",
			mutate: func(t *EmailTemplate) {
				t.Scope = TemplateScope("tenant")
			},
			wantErr: errs.ErrUnknownScope,
		},
		{
			name: "未知触发类型",
			mutate: func(t *EmailTemplate) {
				t.TriggerType = TriggerType("password_reset")
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "名称为空",
			mutate: func(t *EmailTemplate) {
				t.Name = ""
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "主题为空",
			mutate: func(t *EmailTemplate) {
				t.Subject = ""
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "HTML内容为空",
			mutate: func(t *EmailTemplate) {
				t.BodyHTML = ""
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "商家组作用域缺少上下文ID",
			mutate: func(t *EmailTemplate) {
				t.ContextID = 0
			},
			wantErr: errs.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			template := base
			tt.mutate(&template)

			err := template.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmailTemplateUpdate_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, EmailTemplateUpdate{}.IsZero())

	name := "新名称"
	assert.False(t, EmailTemplateUpdate{Name: &name}.IsZero())

	inherit := false
	assert.False(t, EmailTemplateUpdate{InheritFromParent: &inherit}.IsZero())

	empty := ""
	assert.False(t, EmailTemplateUpdate{LogoURL: &empty}.IsZero())
}

func TestTemplateRef(t *testing.T) {
	t.Parallel()

	ref := NewTemplateRef(42)
	assert.True(t, ref.Valid)
	assert.Equal(t, int64(42), ref.ID)

	var zero TemplateRef
	assert.False(t, zero.Valid)
}

func TestTemplateScope_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, ScopeGlobal.IsValid())
	assert.True(t, ScopeGroup.IsValid())
	assert.True(t, ScopeBusiness.IsValid())
	assert.False(t, TemplateScope("").IsValid())
	assert.False(t, TemplateScope("tenant").IsValid())
}

func TestTriggerType_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, TriggerUserRegistration.IsValid())
	assert.True(t, TriggerOrderConfirmation.IsValid())
	assert.True(t, TriggerOrderStatusChange.IsValid())
	assert.False(t, TriggerType("password_reset").IsValid())
}
