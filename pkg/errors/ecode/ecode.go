package ecode

// 业务错误码，0表示无错误

const (
	Success = 0

	Unknown     = 10001
	ValidateErr = 10002

	// MalformedSignal 信号字段缺失或非法，无法完成仓位计算
	MalformedSignal = 20001
	// EquityUnavailable 账户资产查询失败或返回非正值
	EquityUnavailable = 20002
	// OrderRejected 券商拒单
	OrderRejected = 20003
)

var text = map[int]string{
	Success:           "ok",
	Unknown:           "unknown error",
	ValidateErr:       "validate error",
	MalformedSignal:   "malformed signal",
	EquityUnavailable: "equity not available",
	OrderRejected:     "order failed",
}

// Text 返回错误码的默认文案
func Text(code int) string {
	if t, ok := text[code]; ok {
		return t
	}
	return text[Unknown]
}
