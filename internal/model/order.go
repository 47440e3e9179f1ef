package model

import (
	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

// Valid 只接受buy/sell，大小写敏感
func (s OrderSide) Valid() bool {
	return s == Buy || s == Sell
}

type OrderType string

const (
	// 市价购买
	Market OrderType = "market"
)

type TimeInForce string

const (
	// 订单一直有效，直到成交或撤销
	GTC TimeInForce = "gtc"
)

// TakeProfitLeg 止盈腿（限价）
type TakeProfitLeg struct {
	LimitPrice float64 `json:"limit_price"`
}

// StopLossLeg 止损腿（触发价）
type StopLossLeg struct {
	StopPrice float64 `json:"stop_price"`
}

// BracketOrder 券商下单请求体，主单+止盈/止损两条腿
type BracketOrder struct {
	Symbol        string        `json:"symbol"`
	Qty           int64         `json:"qty"`
	Side          OrderSide     `json:"side"`
	Type          OrderType     `json:"type"`
	TimeInForce   TimeInForce   `json:"time_in_force"`
	OrderClass    string        `json:"order_class"`
	ClientOrderID string        `json:"client_order_id,omitempty"`
	TakeProfit    TakeProfitLeg `json:"take_profit"`
	StopLoss      StopLossLeg   `json:"stop_loss"`
}

// NewBracketOrder 根据信号和仓位计算结果构造订单
// 订单类型固定为市价单，时效固定为GTC
func NewBracketOrder(sig *Signal, sz *SizingResult, clientOrderID string) *BracketOrder {
	return &BracketOrder{
		Symbol:        sig.Ticker,
		Qty:           sz.Quantity,
		Side:          sig.Action,
		Type:          Market,
		TimeInForce:   GTC,
		OrderClass:    "bracket",
		ClientOrderID: clientOrderID,
		TakeProfit:    TakeProfitLeg{LimitPrice: sz.TakeProfitPrice.InexactFloat64()},
		StopLoss:      StopLossLeg{StopPrice: sz.StopLossPrice.InexactFloat64()},
	}
}

// OrderResponse 券商的下单回执，Body保留原始响应内容
type OrderResponse struct {
	StatusCode int
	Body       string
}

// SizingResult 仓位计算结果
// Quantity最小为1；两个价格使用不同的舍入规则，见risk.Sizer
type SizingResult struct {
	Quantity        int64
	StopLossPrice   decimal.Decimal
	TakeProfitPrice decimal.Decimal
}

// TradeLogRecord 本地成交记录的一行
type TradeLogRecord struct {
	Ticker string
	Qty    int64
	Side   OrderSide
	Price  decimal.Decimal
	Status string
}

// Row 转成csv行 {ticker, qty, side, price, status}
func (r *TradeLogRecord) Row() []string {
	return []string{
		r.Ticker,
		decimal.NewFromInt(r.Qty).String(),
		string(r.Side),
		r.Price.String(),
		r.Status,
	}
}
