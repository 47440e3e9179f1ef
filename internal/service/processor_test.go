package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"tradehook/conf"
	"tradehook/internal/consts"
	"tradehook/internal/model"
	"tradehook/internal/risk"
	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
)

type fakeBroker struct {
	equity    decimal.Decimal
	equityErr error
	placeResp *model.OrderResponse
	placeErr  error
	placed    []*model.BracketOrder
}

func (f *fakeBroker) GetEquity(ctx context.Context) (decimal.Decimal, error) {
	return f.equity, f.equityErr
}

func (f *fakeBroker) PlaceOrder(ctx context.Context, order *model.BracketOrder) (*model.OrderResponse, error) {
	f.placed = append(f.placed, order)
	return f.placeResp, f.placeErr
}

type fakeNotifier struct {
	msgs []string
}

func (f *fakeNotifier) Send(msg string) { f.msgs = append(f.msgs, msg) }
func (f *fakeNotifier) Sendf(format string, args ...interface{}) {
	f.Send(fmt.Sprintf(format, args...))
}

type fakeRecorder struct {
	rows [][]string
}

func (f *fakeRecorder) Record(row []string) error {
	f.rows = append(f.rows, row)
	return nil
}

func newTestProcessor(t *testing.T, b *fakeBroker, n *fakeNotifier, rec *fakeRecorder) *SignalProcessor {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node failed: %v", err)
	}
	sizer := risk.NewSizer(conf.RiskConfig{RiskPercent: 0.01, StopLossPerc: 0.01, TakeProfitPerc: 0.015})
	return NewSignalProcessor(b, n, sizer, rec, node)
}

func buySignal(price float64) *model.Signal {
	return &model.Signal{
		Action: model.Buy,
		Ticker: "AAPL",
		Price:  decimal.NewFromFloat(price),
	}
}

func TestProcessor_Success(t *testing.T) {
	b := &fakeBroker{
		equity:    decimal.NewFromInt(10000),
		placeResp: &model.OrderResponse{StatusCode: http.StatusOK, Body: `{"id":"904837e3"}`},
	}
	n := &fakeNotifier{}
	rec := &fakeRecorder{}
	p := newTestProcessor(t, b, n, rec)

	res, err := p.Process(context.Background(), buySignal(100))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if res.Qty != 100 {
		t.Fatalf("qty = %d, want 100", res.Qty)
	}

	if len(b.placed) != 1 {
		t.Fatalf("placed orders = %d, want 1", len(b.placed))
	}
	order := b.placed[0]
	if order.Type != model.Market || order.TimeInForce != model.GTC || order.OrderClass != "bracket" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.TakeProfit.LimitPrice != 101.5 || order.StopLoss.StopPrice != 99 {
		t.Fatalf("unexpected legs: %+v", order)
	}
	if order.ClientOrderID == "" {
		t.Fatal("client_order_id should be set")
	}

	// 成功下单只追加一条submitted记录
	if len(rec.rows) != 1 {
		t.Fatalf("trade log rows = %d, want 1", len(rec.rows))
	}
	if rec.rows[0][4] != consts.TradeStatusSubmitted {
		t.Fatalf("status = %s, want submitted", rec.rows[0][4])
	}

	if len(n.msgs) != 1 || !strings.Contains(n.msgs[0], "BUY order placed") {
		t.Fatalf("unexpected notifications: %v", n.msgs)
	}
}

func TestProcessor_EquityFetchFailed(t *testing.T) {
	b := &fakeBroker{equityErr: errors.WithCode(ecode.EquityUnavailable, "account query status 500")}
	n := &fakeNotifier{}
	rec := &fakeRecorder{}
	p := newTestProcessor(t, b, n, rec)

	_, err := p.Process(context.Background(), buySignal(100))
	if err == nil {
		t.Fatal("expected failure")
	}
	if errors.Code(err) != ecode.EquityUnavailable {
		t.Fatalf("error code = %d, want EquityUnavailable", errors.Code(err))
	}
	// 资产不可用时绝不能触发下单
	if len(b.placed) != 0 {
		t.Fatal("no order should be placed")
	}
	if len(n.msgs) == 0 || !strings.Contains(n.msgs[0], "Failed to fetch equity") {
		t.Fatalf("unexpected notifications: %v", n.msgs)
	}
	if len(rec.rows) != 0 {
		t.Fatal("no trade log row expected")
	}
}

func TestProcessor_EquityZero(t *testing.T) {
	b := &fakeBroker{equity: decimal.Zero}
	n := &fakeNotifier{}
	p := newTestProcessor(t, b, n, &fakeRecorder{})

	_, err := p.Process(context.Background(), buySignal(100))
	if errors.Code(err) != ecode.EquityUnavailable {
		t.Fatalf("error code = %d, want EquityUnavailable", errors.Code(err))
	}
	if len(b.placed) != 0 {
		t.Fatal("no order should be placed")
	}
}

func TestProcessor_MalformedPrice(t *testing.T) {
	b := &fakeBroker{equity: decimal.NewFromInt(10000)}
	p := newTestProcessor(t, b, &fakeNotifier{}, &fakeRecorder{})

	_, err := p.Process(context.Background(), buySignal(0))
	if errors.Code(err) != ecode.MalformedSignal {
		t.Fatalf("error code = %d, want MalformedSignal", errors.Code(err))
	}
	if len(b.placed) != 0 {
		t.Fatal("no order should be placed")
	}
}

func TestProcessor_OrderRejected(t *testing.T) {
	body := `{"code":40310000,"message":"insufficient buying power"}`
	b := &fakeBroker{
		equity:    decimal.NewFromInt(10000),
		placeResp: &model.OrderResponse{StatusCode: http.StatusForbidden, Body: body},
		placeErr:  errors.WithCode(ecode.OrderRejected, "Order failed: "+body),
	}
	n := &fakeNotifier{}
	rec := &fakeRecorder{}
	p := newTestProcessor(t, b, n, rec)

	_, err := p.Process(context.Background(), buySignal(100))
	if errors.Code(err) != ecode.OrderRejected {
		t.Fatalf("error code = %d, want OrderRejected", errors.Code(err))
	}
	// 通知携带券商的原始响应体
	if len(n.msgs) != 1 || !strings.Contains(n.msgs[0], "insufficient buying power") {
		t.Fatalf("unexpected notifications: %v", n.msgs)
	}
	// 拒单也落一条rejected记录
	if len(rec.rows) != 1 || rec.rows[0][4] != consts.TradeStatusRejected {
		t.Fatalf("unexpected trade log: %v", rec.rows)
	}
}

func TestOrderSummary(t *testing.T) {
	sig := &model.Signal{Action: model.Sell, Ticker: "TSLA", Price: decimal.NewFromFloat(250.5)}
	sz := &model.SizingResult{
		Quantity:        4,
		StopLossPrice:   decimal.NewFromFloat(253),
		TakeProfitPrice: decimal.NewFromFloat(246.74),
	}
	got := orderSummary(sig, sz)
	for _, want := range []string{"SELL order placed", "`TSLA`", "`$250.5`", "Qty: `4`", "TP: `246.74`", "SL: `253`"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}
