package template

// EmailTemplate 邮件模板视图对象
type EmailTemplate struct {
	ID                 int64    `json:"id"`                 // 模板ID
	Scope              string   `json:"scope"`              // 作用域
	ContextID          int64    `json:"contextId"`          // 作用域上下文ID，全局作用域为0
	TriggerType        string   `json:"triggerType"`        // 触发事件类型
	Name               string   `json:"name"`               // 模板名称
	Description        string   `json:"description"`        // 模板描述
	Subject            string   `json:"subject"`            // 邮件主题
	BodyHTML           string   `json:"bodyHtml"`           // HTML内容
	BodyText           string   `json:"bodyText"`           // 纯文本内容
	AvailableVariables []string `json:"availableVariables"` // 可引用变量名列表
	IsActive           bool     `json:"isActive"`           // 是否生效
	InheritFromParent  bool     `json:"inheritFromParent"`  // 是否继承父作用域
	GroupTemplateID    *int64   `json:"groupTemplateId"`    // 创建时快照的商家组模板ID
	GlobalTemplateID   *int64   `json:"globalTemplateId"`   // 创建时快照的全局模板ID
	LogoURL            string   `json:"logoUrl"`            // Logo资源URL
	Ctime              int64    `json:"ctime"`              // 创建时间
	Utime              int64    `json:"utime"`              // 更新时间
}

type ListTemplatesReq struct {
	Scope     string `json:"scope"`
	ContextID int64  `json:"contextId"` // group/business 作用域必填
}

type ListTemplatesResp struct {
	Templates []EmailTemplate `json:"templates"`
}

type TemplateDetailReq struct {
	Scope      string `json:"scope"`
	TemplateID int64  `json:"templateId"`
}

type TemplateDetailResp struct {
	Template EmailTemplate `json:"template"`
}

type CreateTemplateReq struct {
	Scope              string   `json:"scope"`
	ContextID          int64    `json:"contextId"`
	TriggerType        string   `json:"triggerType"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Subject            string   `json:"subject"`
	BodyHTML           string   `json:"bodyHtml"`
	BodyText           string   `json:"bodyText"`
	AvailableVariables []string `json:"availableVariables"`
	IsActive           *bool    `json:"isActive"` // 缺省为 true
	InheritFromParent  bool     `json:"inheritFromParent"`
	LogoURL            string   `json:"logoUrl"`
}

type CreateTemplateResp struct {
	Template EmailTemplate `json:"template"`
}

// UpdateTemplateReq 部分更新请求，nil 字段不更新
type UpdateTemplateReq struct {
	Scope              string    `json:"scope"`
	TemplateID         int64     `json:"templateId"`
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	Subject            *string   `json:"subject"`
	BodyHTML           *string   `json:"bodyHtml"`
	BodyText           *string   `json:"bodyText"`
	AvailableVariables *[]string `json:"availableVariables"`
	IsActive           *bool     `json:"isActive"`
	InheritFromParent  *bool     `json:"inheritFromParent"`
	LogoURL            *string   `json:"logoUrl"`
}

type UpdateTemplateResp struct {
	Template EmailTemplate `json:"template"`
}

type DeleteTemplateReq struct {
	Scope      string `json:"scope"`
	TemplateID int64  `json:"templateId"`
}

type ResolveTemplateReq struct {
	TriggerType     string `json:"triggerType"`
	BusinessID      int64  `json:"businessId"`      // 可选
	BusinessGroupID int64  `json:"businessGroupId"` // 可选
}

type ResolveTemplateResp struct {
	Template EmailTemplate `json:"template"`
	Scope    string        `json:"scope"` // 生效模板来源作用域
}

type RemoveLogoReq struct {
	Scope      string `json:"scope"`
	TemplateID int64  `json:"templateId"`
}
