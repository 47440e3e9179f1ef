package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	// SignatureHeader webhook签名请求头
	SignatureHeader = "X-Signature"
	// RequestIdHeader 响应中透传的请求id
	RequestIdHeader = "X-Request-Id"

	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

const (
	// TradeStatusSubmitted 订单已提交到券商
	TradeStatusSubmitted = "submitted"
	// TradeStatusRejected 券商拒单
	TradeStatusRejected = "rejected"
)
