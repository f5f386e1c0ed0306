package errcode

import "fmt"

// Err 后端统一错误: 业务错误码 + 描述
// 与后端返回的 {code, msg} 信封一一对应
type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Msg)
}

// NewErr 创建指定错误码的错误
func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// NewCustomErr 创建自定义业务错误 (错误码固定为 CodeCustom)
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

const (
	CodeOK            = 200
	CodeCustom        = 7000
	CodeInvalidParams = 7001
	CodeNotFound      = 7404
	CodeInternal      = 7500
)

var (
	ErrInvalidParams = NewErr(CodeInvalidParams, "invalid params")
	ErrNotFound      = NewErr(CodeNotFound, "resource not found")
	ErrInternal      = NewErr(CodeInternal, "internal server error")
)

// IsSuccess 判断后端返回码是否为成功
func IsSuccess(code int) bool {
	return code == CodeOK
}
