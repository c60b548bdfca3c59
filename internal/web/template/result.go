package template

import (
	"errors"

	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/ginx"
)

const (
	SYSTEMERRORCODE = 506001

	invalidParamCode = 400001
	forbiddenCode    = 403001
	notFoundCode     = 404001
	conflictCode     = 409001
	unavailableCode  = 503001
)

var (
	SystemError = ErrorCode{
		Code: SYSTEMERRORCODE,
		Msg:  "系统错误",
	}

	systemErrorResult = ginx.Result{
		Code: SystemError.Code,
		Msg:  SystemError.Msg,
	}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// bizResult 把错误分类映射成带独立业务码的响应，
// 上游据此区分"未配置模板"与系统故障等不同含义
func bizResult(err error) (ginx.Result, bool) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter), errors.Is(err, errs.ErrUnknownScope):
		return ginx.Result{Code: invalidParamCode, Msg: err.Error()}, true
	case errors.Is(err, errs.ErrGlobalTemplateImmutable):
		return ginx.Result{Code: forbiddenCode, Msg: err.Error()}, true
	case errors.Is(err, errs.ErrTemplateNotFound), errors.Is(err, errs.ErrBusinessNotFound):
		return ginx.Result{Code: notFoundCode, Msg: err.Error()}, true
	case errors.Is(err, errs.ErrTemplateDuplicate):
		return ginx.Result{Code: conflictCode, Msg: err.Error()}, true
	case errors.Is(err, errs.ErrStorageUnavailable), errors.Is(err, errs.ErrLogoUploadFailed):
		return ginx.Result{Code: unavailableCode, Msg: err.Error()}, true
	default:
		return ginx.Result{}, false
	}
}
