package errs

import "errors"

var (
	// ErrInvalidParameter 参数非法，调用方必须修正后重试
	ErrInvalidParameter = errors.New("参数非法")

	// ErrUnknownScope 未知的模板作用域
	ErrUnknownScope = errors.New("未知的模板作用域")

	// ErrTemplateNotFound 模板不存在，对 resolve 调用方而言表示"未配置模板"而非系统故障
	ErrTemplateNotFound = errors.New("模板不存在")

	// ErrTemplateDuplicate 同一作用域上下文内该触发类型已存在生效模板
	ErrTemplateDuplicate = errors.New("该触发类型的模板已存在")

	// ErrGlobalTemplateImmutable 全局模板是兜底模板，只能停用不能删除
	ErrGlobalTemplateImmutable = errors.New("全局模板禁止删除")

	// ErrBusinessNotFound 商家不存在或未归属任何商家组
	ErrBusinessNotFound = errors.New("商家不存在")

	// ErrStorageUnavailable 底层存储不可用，调用方可以整体重试
	ErrStorageUnavailable = errors.New("存储服务不可用")

	// ErrLogoUploadFailed Logo 上传失败，不影响模板记录本身
	ErrLogoUploadFailed = errors.New("Logo上传失败")

	// ErrUserUnauthorized 未授权访问
	ErrUserUnauthorized = errors.New("未授权访问")
)
