package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"tradehook/internal/broker"
	"tradehook/internal/consts"
	"tradehook/internal/model"
	"tradehook/internal/notify"
	"tradehook/internal/risk"
	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
	"tradehook/pkg/logger"
	"tradehook/pkg/recorder"
)

// SignalProcessor 信号处理主流程：
// 查资产 -> 算仓位 -> 下单 -> 通知 -> 本地记录，严格顺序执行
// 资产/仓位/下单任一环节失败都会通知后带错误码返回
type SignalProcessor struct {
	broker   broker.Broker
	notifier notify.Notifier
	sizer    *risk.Sizer
	recorder recorder.Recorder
	node     *snowflake.Node
}

func NewSignalProcessor(
	b broker.Broker,
	n notify.Notifier,
	sizer *risk.Sizer,
	rec recorder.Recorder,
	node *snowflake.Node) *SignalProcessor {
	return &SignalProcessor{
		broker:   b,
		notifier: n,
		sizer:    sizer,
		recorder: rec,
		node:     node,
	}
}

// ProcessResult 成功下单后的结果
type ProcessResult struct {
	Qty int64
}

func (p *SignalProcessor) Process(ctx context.Context, sig *model.Signal) (*ProcessResult, error) {
	equity := p.fetchEquity(ctx)
	if equity.Sign() <= 0 {
		return nil, errors.WithCode(ecode.EquityUnavailable, "Equity not available")
	}

	sz, err := p.sizer.Size(sig.Action, sig.Price, equity)
	if err != nil {
		return nil, err
	}

	order := model.NewBracketOrder(sig, sz, p.node.Generate().String())
	resp, err := p.broker.PlaceOrder(ctx, order)
	if resp != nil {
		logger.Info(strings.ToUpper(string(sig.Action))+" Order",
			logger.Pair("symbol", sig.Ticker),
			logger.Pair("qty", sz.Quantity),
			logger.Pair("client_order_id", order.ClientOrderID),
			logger.Pair("status", resp.StatusCode),
			logger.Pair("response", resp.Body))
	}
	if err != nil {
		if resp != nil {
			p.notifier.Sendf("❌ Order failed: %s", resp.Body)
		} else {
			p.notifier.Sendf("❌ Order failed: %v", err)
		}
		// 拒单也落一条本地记录
		if rerr := p.record(sig, sz.Quantity, consts.TradeStatusRejected); rerr != nil {
			logger.Errorf("trade log append failed: %v", rerr)
		}
		return nil, err
	}

	p.notifier.Send(orderSummary(sig, sz))
	if rerr := p.record(sig, sz.Quantity, consts.TradeStatusSubmitted); rerr != nil {
		logger.Errorf("trade log append failed: %v", rerr)
	}
	return &ProcessResult{Qty: sz.Quantity}, nil
}

// fetchEquity 资产查询失败时先通知，再以0作为哨兵值返回
// 调用方以非正值判定为硬失败
func (p *SignalProcessor) fetchEquity(ctx context.Context) decimal.Decimal {
	eq, err := p.broker.GetEquity(ctx)
	if err != nil {
		p.notifier.Sendf("❌ Failed to fetch equity: %v", err)
		return decimal.Zero
	}
	return eq
}

func (p *SignalProcessor) record(sig *model.Signal, qty int64, status string) error {
	rec := model.TradeLogRecord{
		Ticker: sig.Ticker,
		Qty:    qty,
		Side:   sig.Action,
		Price:  sig.Price,
		Status: status,
	}
	return p.recorder.Record(rec.Row())
}

// orderSummary 推送到聊天频道的成交摘要
func orderSummary(sig *model.Signal, sz *model.SizingResult) string {
	var b strings.Builder
	b.WriteString("✅ **" + strings.ToUpper(string(sig.Action)) + " order placed** for `" + sig.Ticker + "` at `$" + sig.Price.String() + "`\n")
	b.WriteString("Qty: `" + decimal.NewFromInt(sz.Quantity).String() + "` | TP: `" + sz.TakeProfitPrice.String() + "` | SL: `" + sz.StopLossPrice.String() + "`")
	return b.String()
}
