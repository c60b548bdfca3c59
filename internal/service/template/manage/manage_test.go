//go:build unit

package manage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-email-template/internal/domain"
	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/logger"
	repomocks "go-email-template/internal/repository/mocks"
	assetmocks "go-email-template/internal/service/asset/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testMocks struct {
	repo         *repomocks.MockEmailTemplateRepository
	businessRepo *repomocks.MockBusinessRepository
	assetStore   *assetmocks.MockStore
}

func newTestService(ctrl *gomock.Controller) (EmailTemplateService, testMocks) {
	mocks := testMocks{
		repo:         repomocks.NewMockEmailTemplateRepository(ctrl),
		businessRepo: repomocks.NewMockBusinessRepository(ctrl),
		assetStore:   assetmocks.NewMockStore(ctrl),
	}
	var seq uint64
	svc := NewEmailTemplateService(mocks.repo, mocks.businessRepo, mocks.assetStore,
		func() (uint64, error) {
			seq++
			return 1000 + seq, nil
		},
		logger.NewZapLogger(zap.NewNop()))
	return svc, mocks
}

func validTemplate(scope domain.TemplateScope, contextID int64) domain.EmailTemplate {
	return domain.EmailTemplate{
		Scope:       scope,
		ContextID:   contextID,
		TriggerType: domain.TriggerUserRegistration,
		Name:        "欢迎邮件",
		Subject:     "欢迎注册",
		BodyHTML:    "<p>您好，{{userName}}</p>",
		IsActive:    true,
	}
}

func TestTemplateService_CreateTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		template  func() domain.EmailTemplate
		mockFunc  func(m testMocks)
		checkFunc func(t *testing.T, created domain.EmailTemplate)
		wantErr   error
	}{
		{
			name: "创建全局模板不查祖先且强制清空上下文",
			template: func() domain.EmailTemplate {
				template := validTemplate(domain.ScopeGlobal, 0)
				template.InheritFromParent = true
				return template
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
						assert.Equal(t, int64(0), template.ContextID)
						assert.False(t, template.InheritFromParent)
						assert.False(t, template.GlobalTemplateRef.Valid)
						assert.False(t, template.GroupTemplateRef.Valid)
						return template, nil
					})
			},
			checkFunc: func(t *testing.T, created domain.EmailTemplate) {
				assert.Positive(t, created.ID)
			},
		},
		{
			name: "创建商家组模板快照全局祖先",
			template: func() domain.EmailTemplate {
				return validTemplate(domain.ScopeGroup, 3)
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGlobal, int64(0), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{ID: 1, Scope: domain.ScopeGlobal}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
						return template, nil
					})
			},
			checkFunc: func(t *testing.T, created domain.EmailTemplate) {
				assert.Equal(t, domain.NewTemplateRef(1), created.GlobalTemplateRef)
				assert.False(t, created.GroupTemplateRef.Valid)
			},
		},
		{
			name: "创建声明继承的商家模板同时快照全局和商家组祖先",
			template: func() domain.EmailTemplate {
				template := validTemplate(domain.ScopeBusiness, 7)
				template.InheritFromParent = true
				return template
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGlobal, int64(0), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{ID: 1, Scope: domain.ScopeGlobal}, nil)
				m.businessRepo.EXPECT().GetGroupIDForBusiness(gomock.Any(), int64(7)).
					Return(int64(3), true, nil)
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGroup, int64(3), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{ID: 21, Scope: domain.ScopeGroup, ContextID: 3}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
						return template, nil
					})
			},
			checkFunc: func(t *testing.T, created domain.EmailTemplate) {
				assert.Equal(t, domain.NewTemplateRef(1), created.GlobalTemplateRef)
				assert.Equal(t, domain.NewTemplateRef(21), created.GroupTemplateRef)
			},
		},
		{
			name: "创建未声明继承的商家模板不快照商家组祖先",
			template: func() domain.EmailTemplate {
				return validTemplate(domain.ScopeBusiness, 7)
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGlobal, int64(0), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{ID: 1, Scope: domain.ScopeGlobal}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
						return template, nil
					})
			},
			checkFunc: func(t *testing.T, created domain.EmailTemplate) {
				assert.Equal(t, domain.NewTemplateRef(1), created.GlobalTemplateRef)
				assert.False(t, created.GroupTemplateRef.Valid)
			},
		},
		{
			name: "祖先缺失时引用留空不报错",
			template: func() domain.EmailTemplate {
				return validTemplate(domain.ScopeGroup, 3)
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGlobal, int64(0), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{}, errs.ErrTemplateNotFound)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template domain.EmailTemplate) (domain.EmailTemplate, error) {
						return template, nil
					})
			},
			checkFunc: func(t *testing.T, created domain.EmailTemplate) {
				assert.False(t, created.GlobalTemplateRef.Valid)
				assert.False(t, created.GroupTemplateRef.Valid)
			},
		},
		{
			name: "同上下文同触发类型重复创建",
			template: func() domain.EmailTemplate {
				return validTemplate(domain.ScopeGroup, 3)
			},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGlobal, int64(0), domain.TriggerUserRegistration).
					Return(domain.EmailTemplate{ID: 1}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.EmailTemplate{}, errs.ErrTemplateDuplicate)
			},
			wantErr: errs.ErrTemplateDuplicate,
		},
		{
			name: "缺少模板名称",
			template: func() domain.EmailTemplate {
				template := validTemplate(domain.ScopeGroup, 3)
				template.Name = ""
				return template
			},
			mockFunc: func(testMocks) {},
			wantErr:  errs.ErrInvalidParameter,
		},
		{
			name: "非全局作用域缺少上下文ID",
			template: func() domain.EmailTemplate {
				return validTemplate(domain.ScopeBusiness, 0)
			},
			mockFunc: func(testMocks) {},
			wantErr:  errs.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			tt.mockFunc(mocks)

			created, err := svc.CreateTemplate(t.Context(), tt.template())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, created)
			}
		})
	}
}

func TestTemplateService_UpdateTemplate(t *testing.T) {
	t.Parallel()

	name := "新名称"
	inherit := true

	tests := []struct {
		name     string
		scope    domain.TemplateScope
		update   domain.EmailTemplateUpdate
		mockFunc func(m testMocks)
		wantErr  error
	}{
		{
			name:   "部分更新只动提供的字段",
			scope:  domain.ScopeGroup,
			update: domain.EmailTemplateUpdate{Name: &name},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeGroup, int64(5), domain.EmailTemplateUpdate{Name: &name}).
					Return(nil)
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{ID: 5, Name: name}, nil)
			},
		},
		{
			name:   "切换继承标记",
			scope:  domain.ScopeBusiness,
			update: domain.EmailTemplateUpdate{InheritFromParent: &inherit},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeBusiness, int64(5), gomock.Any()).Return(nil)
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeBusiness, int64(5)).
					Return(domain.EmailTemplate{ID: 5, InheritFromParent: true}, nil)
			},
		},
		{
			name:    "全局模板拒绝继承标记",
			scope:   domain.ScopeGlobal,
			update:  domain.EmailTemplateUpdate{InheritFromParent: &inherit},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:   "空更新直接返回当前记录",
			scope:  domain.ScopeGroup,
			update: domain.EmailTemplateUpdate{},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{ID: 5}, nil)
			},
		},
		{
			name:   "更新不存在的模板",
			scope:  domain.ScopeGroup,
			update: domain.EmailTemplateUpdate{Name: &name},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeGroup, int64(5), gomock.Any()).
					Return(errs.ErrTemplateNotFound)
			},
			wantErr: errs.ErrTemplateNotFound,
		},
		{
			name:    "非法作用域",
			scope:   domain.TemplateScope("tenant"),
			update:  domain.EmailTemplateUpdate{Name: &name},
			wantErr: errs.ErrUnknownScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			if tt.mockFunc != nil {
				tt.mockFunc(mocks)
			}

			_, err := svc.UpdateTemplate(t.Context(), tt.scope, 5, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTemplateService_DeleteTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scope    domain.TemplateScope
		mockFunc func(m testMocks)
		wantErr  error
	}{
		{
			name:    "全局模板禁止删除",
			scope:   domain.ScopeGlobal,
			wantErr: errs.ErrGlobalTemplateImmutable,
		},
		{
			name:  "删除商家模板",
			scope: domain.ScopeBusiness,
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Delete(gomock.Any(), domain.ScopeBusiness, int64(9)).Return(nil)
			},
		},
		{
			name:  "删除不存在的模板",
			scope: domain.ScopeGroup,
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().Delete(gomock.Any(), domain.ScopeGroup, int64(9)).
					Return(errs.ErrTemplateNotFound)
			},
			wantErr: errs.ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			if tt.mockFunc != nil {
				tt.mockFunc(mocks)
			}

			err := svc.DeleteTemplate(t.Context(), tt.scope, 9)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTemplateService_UploadLogo(t *testing.T) {
	t.Parallel()

	errStorage := errors.New("存储服务不可达")

	tests := []struct {
		name     string
		file     LogoFile
		mockFunc func(m testMocks)
		wantErr  error
	}{
		{
			name: "上传成功后回读落库记录",
			file: LogoFile{Name: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{ID: 5, Scope: domain.ScopeGroup, Utime: 100}, nil)
				m.assetStore.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", []byte("png-bytes")).
					DoAndReturn(func(_ context.Context, path, _ string, _ []byte) (string, error) {
						assert.Contains(t, path, "email-templates/group/5/logo-")
						assert.Contains(t, path, ".png")
						return "https://cdn.example.com/" + path, nil
					})
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeGroup, int64(5), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.TemplateScope, _ int64, update domain.EmailTemplateUpdate) error {
						require.NotNil(t, update.LogoURL)
						assert.Contains(t, *update.LogoURL, "https://cdn.example.com/")
						return nil
					})
				// 更新后回读，utime 必须是落库后的新值而非上传前的快照
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{
						ID:      5,
						Scope:   domain.ScopeGroup,
						LogoURL: "https://cdn.example.com/email-templates/group/5/logo-1-abc.png",
						Utime:   200,
					}, nil)
			},
		},
		{
			name:    "文件为空",
			file:    LogoFile{Name: "logo.png", ContentType: "image/png"},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "超过5MB上限",
			file: LogoFile{
				Name:        "logo.png",
				ContentType: "image/png",
				Data:        bytes.Repeat([]byte{0x1}, maxLogoSizeBytes+1),
			},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "不支持的文件类型",
			file:    LogoFile{Name: "logo.svg", ContentType: "image/svg+xml", Data: []byte("<svg/>")},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "模板不存在时不上传",
			file: LogoFile{Name: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{}, errs.ErrTemplateNotFound)
			},
			wantErr: errs.ErrTemplateNotFound,
		},
		{
			name: "对象存储失败",
			file: LogoFile{Name: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")},
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeGroup, int64(5)).
					Return(domain.EmailTemplate{ID: 5}, nil)
				m.assetStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errStorage)
			},
			wantErr: errs.ErrLogoUploadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			if tt.mockFunc != nil {
				tt.mockFunc(mocks)
			}

			updated, err := svc.UploadLogo(t.Context(), domain.ScopeGroup, 5, tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, updated.LogoURL)
			assert.Equal(t, int64(200), updated.Utime)
		})
	}
}

func TestTemplateService_RemoveLogo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mockFunc func(m testMocks)
		wantErr  error
	}{
		{
			name: "清除Logo并删除外部对象",
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeBusiness, int64(7)).
					Return(domain.EmailTemplate{
						ID:      7,
						LogoURL: "https://cdn.example.com/email-templates/business/7/logo-1-abc.png",
					}, nil)
				m.assetStore.EXPECT().Delete(gomock.Any(), "email-templates/business/7/logo-1-abc.png").
					Return(nil)
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeBusiness, int64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.TemplateScope, _ int64, update domain.EmailTemplateUpdate) error {
						require.NotNil(t, update.LogoURL)
						assert.Empty(t, *update.LogoURL)
						return nil
					})
			},
		},
		{
			name: "无Logo时直接返回",
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeBusiness, int64(7)).
					Return(domain.EmailTemplate{ID: 7}, nil)
			},
		},
		{
			name: "外部对象删除失败不阻断清除",
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), domain.ScopeBusiness, int64(7)).
					Return(domain.EmailTemplate{
						ID:      7,
						LogoURL: "https://cdn.example.com/email-templates/business/7/logo-1-abc.png",
					}, nil)
				m.assetStore.EXPECT().Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("存储服务不可达"))
				m.repo.EXPECT().Update(gomock.Any(), domain.ScopeBusiness, int64(7), gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			tt.mockFunc(mocks)

			err := svc.RemoveLogo(t.Context(), domain.ScopeBusiness, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTemplateService_GetTemplateByTrigger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		scope       domain.TemplateScope
		contextID   int64
		triggerType domain.TriggerType
		mockFunc    func(m testMocks)
		wantErr     error
	}{
		{
			name:        "全局作用域携带上下文ID被拒绝",
			scope:       domain.ScopeGlobal,
			contextID:   3,
			triggerType: domain.TriggerUserRegistration,
			wantErr:     errs.ErrInvalidParameter,
		},
		{
			name:        "商家作用域缺少上下文ID被拒绝",
			scope:       domain.ScopeBusiness,
			contextID:   0,
			triggerType: domain.TriggerUserRegistration,
			wantErr:     errs.ErrInvalidParameter,
		},
		{
			name:        "正常查询商家组模板",
			scope:       domain.ScopeGroup,
			contextID:   3,
			triggerType: domain.TriggerOrderConfirmation,
			mockFunc: func(m testMocks) {
				m.repo.EXPECT().GetActiveByTrigger(gomock.Any(), domain.ScopeGroup, int64(3), domain.TriggerOrderConfirmation).
					Return(domain.EmailTemplate{ID: 21}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newTestService(ctrl)
			if tt.mockFunc != nil {
				tt.mockFunc(mocks)
			}

			_, err := svc.GetTemplateByTrigger(t.Context(), tt.scope, tt.contextID, tt.triggerType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
