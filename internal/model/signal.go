package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
)

/*
来源于外部告警服务的数据

	{
	  "action": "buy",
	  "ticker": "AAPL",
	  "price": 189.5
	}
*/
type WebhookRequest struct {
	Action string      `json:"action"` // buy / sell
	Ticker string      `json:"ticker"` // 股票代码，不做校验，交给券商拒绝
	Price  interface{} `json:"price"`  // 参考价，可能是数字或数字字符串
}

// Signal 单次请求内的交易信号，不跨请求保存
type Signal struct {
	Action OrderSide
	Ticker string
	Price  decimal.Decimal
}

// ParseSignal 从原始载荷提取信号
// price缺省为0；存在但无法转成数字时报MalformedSignal
func (r *WebhookRequest) ParseSignal() (*Signal, error) {
	price := 0.0
	if r.Price != nil {
		p, err := cast.ToFloat64E(r.Price)
		if err != nil {
			return nil, errors.WithCode(ecode.MalformedSignal, fmt.Sprintf("invalid price: %v", r.Price))
		}
		price = p
	}
	return &Signal{
		Action: OrderSide(r.Action),
		Ticker: r.Ticker,
		Price:  decimal.NewFromFloat(price),
	}, nil
}
