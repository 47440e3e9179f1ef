package alpaca

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"tradehook/conf"
	"tradehook/internal/model"
	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
)

// Alpaca REST客户端，只用到账户查询和下单两个接口

type Client struct {
	c *resty.Client
}

func NewClient(cfg conf.Broker) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("APCA-API-KEY-ID", cfg.Key).
		SetHeader("APCA-API-SECRET-KEY", cfg.Secret)
	return &Client{c: c}
}

// equity字段可能是数字或数字字符串，统一走cast转换
type accountResponse struct {
	Equity interface{} `json:"equity"`
}

// GetEquity 查询账户总资产，每次请求实时拉取，不缓存
func (cl *Client) GetEquity(ctx context.Context) (decimal.Decimal, error) {
	var acc accountResponse
	resp, err := cl.c.R().
		SetContext(ctx).
		SetResult(&acc).
		Get("/v2/account")
	if err != nil {
		return decimal.Zero, errors.Wrap(err, ecode.EquityUnavailable, "fetch account failed")
	}
	if resp.IsError() {
		return decimal.Zero, errors.WithCode(ecode.EquityUnavailable,
			fmt.Sprintf("account query status %d: %s", resp.StatusCode(), resp.String()))
	}
	eq, err := cast.ToFloat64E(acc.Equity)
	if err != nil {
		return decimal.Zero, errors.WithCode(ecode.EquityUnavailable,
			fmt.Sprintf("unparseable equity: %v", acc.Equity))
	}
	return decimal.NewFromFloat(eq), nil
}

// PlaceOrder 提交括号订单
// 状态码>=400视为拒单，回执Body保留券商的原始响应
func (cl *Client) PlaceOrder(ctx context.Context, order *model.BracketOrder) (*model.OrderResponse, error) {
	resp, err := cl.c.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		Post("/v2/orders")
	if err != nil {
		return nil, errors.Wrap(err, ecode.OrderRejected, "submit order failed")
	}
	result := &model.OrderResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}
	if resp.StatusCode() >= 400 {
		return result, errors.WithCode(ecode.OrderRejected,
			fmt.Sprintf("Order failed: %s", resp.String()))
	}
	return result, nil
}
