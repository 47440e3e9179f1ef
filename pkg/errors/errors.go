package errors

import (
	"fmt"

	"tradehook/pkg/errors/ecode"
)

// 带错误码的error，边界处统一通过DecodeErr转成客户端响应

type codedError struct {
	code  int
	msg   string
	cause error
}

func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *codedError) Unwrap() error { return e.cause }

// New 创建一个Unknown错误
func New(msg string) error {
	return &codedError{code: ecode.Unknown, msg: msg}
}

// WithCode 创建一个指定错误码的错误
func WithCode(code int, msg string) error {
	if msg == "" {
		msg = ecode.Text(code)
	}
	return &codedError{code: code, msg: msg}
}

// Wrap 包装err并附加错误码，err为nil时返回nil
func Wrap(err error, code int, msg string) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, msg: msg, cause: err}
}

// Code 提取错误码，非codedError返回Unknown
func Code(err error) int {
	if err == nil {
		return ecode.Success
	}
	if ce, ok := err.(*codedError); ok {
		return ce.code
	}
	return ecode.Unknown
}

// DecodeErr 解析错误，返回错误码和可读信息
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Text(ecode.Success)
	}
	if ce, ok := err.(*codedError); ok {
		return ce.code, ce.Error()
	}
	return ecode.Unknown, err.Error()
}
