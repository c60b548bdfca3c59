package template

import (
	"io"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"go-email-template/internal/domain"
	"go-email-template/internal/pkg/ginx"
	"go-email-template/internal/service/template/manage"
	"go-email-template/internal/service/template/resolve"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	manageSvc  manage.EmailTemplateService
	resolveSvc resolve.Service
	auth       gin.HandlerFunc
}

func NewHandler(manageSvc manage.EmailTemplateService, resolveSvc resolve.Service, auth gin.HandlerFunc) *Handler {
	return &Handler{manageSvc: manageSvc, resolveSvc: resolveSvc, auth: auth}
}

// PrivateRoutes 管理后台的模板维护接口，需要鉴权
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/templates", h.auth)
	g.POST("/list", ginx.B[ListTemplatesReq](h.ListTemplates))
	g.POST("/detail", ginx.B[TemplateDetailReq](h.TemplateDetail))
	g.POST("/create", ginx.B[CreateTemplateReq](h.CreateTemplate))
	g.POST("/update", ginx.B[UpdateTemplateReq](h.UpdateTemplate))
	g.POST("/delete", ginx.B[DeleteTemplateReq](h.DeleteTemplate))
	g.POST("/logo/upload", ginx.W(h.UploadLogo))
	g.POST("/logo/remove", ginx.B[RemoveLogoReq](h.RemoveLogo))
}

// PublicRoutes 给通知发送方用的解析入口
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/templates/resolve", ginx.B[ResolveTemplateReq](h.ResolveTemplate))
}

func (h *Handler) ListTemplates(ctx *gin.Context, req ListTemplatesReq) (ginx.Result, error) {
	templates, err := h.manageSvc.ListTemplates(ctx.Request.Context(), domain.TemplateScope(req.Scope), req.ContextID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: ListTemplatesResp{
			Templates: slice.Map(templates, func(_ int, src domain.EmailTemplate) EmailTemplate {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) TemplateDetail(ctx *gin.Context, req TemplateDetailReq) (ginx.Result, error) {
	template, err := h.manageSvc.GetTemplateByID(ctx.Request.Context(), domain.TemplateScope(req.Scope), req.TemplateID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: TemplateDetailResp{Template: h.toVO(template)},
	}, nil
}

// CreateTemplate 新增模板，祖先引用由服务端快照
func (h *Handler) CreateTemplate(ctx *gin.Context, req CreateTemplateReq) (ginx.Result, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	template := domain.EmailTemplate{
		Scope:              domain.TemplateScope(req.Scope),
		ContextID:          req.ContextID,
		TriggerType:        domain.TriggerType(req.TriggerType),
		Name:               req.Name,
		Description:        req.Description,
		Subject:            req.Subject,
		BodyHTML:           req.BodyHTML,
		BodyText:           req.BodyText,
		AvailableVariables: req.AvailableVariables,
		IsActive:           isActive,
		InheritFromParent:  req.InheritFromParent,
		LogoURL:            req.LogoURL,
	}

	created, err := h.manageSvc.CreateTemplate(ctx.Request.Context(), template)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: CreateTemplateResp{Template: h.toVO(created)},
	}, nil
}

// UpdateTemplate 部分更新，继承标记可以独立翻转且不清空已有内容
func (h *Handler) UpdateTemplate(ctx *gin.Context, req UpdateTemplateReq) (ginx.Result, error) {
	update := domain.EmailTemplateUpdate{
		Name:               req.Name,
		Description:        req.Description,
		Subject:            req.Subject,
		BodyHTML:           req.BodyHTML,
		BodyText:           req.BodyText,
		AvailableVariables: req.AvailableVariables,
		IsActive:           req.IsActive,
		InheritFromParent:  req.InheritFromParent,
		LogoURL:            req.LogoURL,
	}

	updated, err := h.manageSvc.UpdateTemplate(ctx.Request.Context(), domain.TemplateScope(req.Scope), req.TemplateID, update)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: UpdateTemplateResp{Template: h.toVO(updated)},
	}, nil
}

func (h *Handler) DeleteTemplate(ctx *gin.Context, req DeleteTemplateReq) (ginx.Result, error) {
	if err := h.manageSvc.DeleteTemplate(ctx.Request.Context(), domain.TemplateScope(req.Scope), req.TemplateID); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ResolveTemplate 解析生效模板
func (h *Handler) ResolveTemplate(ctx *gin.Context, req ResolveTemplateReq) (ginx.Result, error) {
	resolved, err := h.resolveSvc.Resolve(ctx.Request.Context(), domain.TriggerType(req.TriggerType), req.BusinessID, req.BusinessGroupID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: ResolveTemplateResp{
			Template: h.toVO(resolved.Template),
			Scope:    resolved.Scope.String(),
		},
	}, nil
}

// UploadLogo multipart 表单：scope、templateId、file
func (h *Handler) UploadLogo(ctx *gin.Context) (ginx.Result, error) {
	templateID, err := strconv.ParseInt(ctx.PostForm("templateId"), 10, 64)
	if err != nil {
		return ginx.Result{Code: invalidParamCode, Msg: "templateId 非法"}, nil
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ginx.Result{Code: invalidParamCode, Msg: "缺少Logo文件"}, nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return systemErrorResult, err
	}

	template, err := h.manageSvc.UploadLogo(ctx.Request.Context(),
		domain.TemplateScope(ctx.PostForm("scope")), templateID,
		manage.LogoFile{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: TemplateDetailResp{Template: h.toVO(template)},
	}, nil
}

func (h *Handler) RemoveLogo(ctx *gin.Context, req RemoveLogoReq) (ginx.Result, error) {
	if err := h.manageSvc.RemoveLogo(ctx.Request.Context(), domain.TemplateScope(req.Scope), req.TemplateID); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	if res, ok := bizResult(err); ok {
		return res, nil
	}
	return systemErrorResult, err
}

func (h *Handler) toVO(src domain.EmailTemplate) EmailTemplate {
	vo := EmailTemplate{
		ID:                 src.ID,
		Scope:              src.Scope.String(),
		ContextID:          src.ContextID,
		TriggerType:        src.TriggerType.String(),
		Name:               src.Name,
		Description:        src.Description,
		Subject:            src.Subject,
		BodyHTML:           src.BodyHTML,
		BodyText:           src.BodyText,
		AvailableVariables: src.AvailableVariables,
		IsActive:           src.IsActive,
		InheritFromParent:  src.InheritFromParent,
		LogoURL:            src.LogoURL,
		Ctime:              src.Ctime,
		Utime:              src.Utime,
	}
	if src.GroupTemplateRef.Valid {
		id := src.GroupTemplateRef.ID
		vo.GroupTemplateID = &id
	}
	if src.GlobalTemplateRef.Valid {
		id := src.GlobalTemplateRef.ID
		vo.GlobalTemplateID = &id
	}
	return vo
}
