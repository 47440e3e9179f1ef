package risk

import (
	"github.com/shopspring/decimal"

	"tradehook/conf"
	"tradehook/internal/model"
	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
)

// 基于账户资产的仓位计算，纯函数，无副作用

var one = decimal.NewFromInt(1)

type Sizer struct {
	riskPercent    decimal.Decimal
	stopLossPerc   decimal.Decimal
	takeProfitPerc decimal.Decimal
}

func NewSizer(cfg conf.RiskConfig) *Sizer {
	return &Sizer{
		riskPercent:    decimal.NewFromFloat(cfg.RiskPercent),
		stopLossPerc:   decimal.NewFromFloat(cfg.StopLossPerc),
		takeProfitPerc: decimal.NewFromFloat(cfg.TakeProfitPerc),
	}
}

// Size 计算下单数量和止盈/止损价
//
// risk_amount = equity * riskPercent
// qty = max(1, floor(risk_amount / |price - sl|))，止损距离用未舍入的价格
// 止盈价四舍五入到2位小数，止损价向下舍入到2位小数，两者的舍入规则不同
func (s *Sizer) Size(action model.OrderSide, price, equity decimal.Decimal) (*model.SizingResult, error) {
	if price.Sign() <= 0 {
		return nil, errors.WithCode(ecode.MalformedSignal, "price must be positive")
	}

	riskAmount := equity.Mul(s.riskPercent)

	var slRaw, tpRaw decimal.Decimal
	if action == model.Buy {
		slRaw = price.Mul(one.Sub(s.stopLossPerc))
		tpRaw = price.Mul(one.Add(s.takeProfitPerc))
	} else {
		slRaw = price.Mul(one.Add(s.stopLossPerc))
		tpRaw = price.Mul(one.Sub(s.takeProfitPerc))
	}

	dist := price.Sub(slRaw).Abs()
	if dist.IsZero() {
		return nil, errors.WithCode(ecode.MalformedSignal, "stop distance is zero")
	}

	// IntPart对正数即向下取整
	qty := riskAmount.Div(dist).IntPart()
	if qty < 1 {
		qty = 1
	}

	return &model.SizingResult{
		Quantity:        qty,
		StopLossPrice:   slRaw.RoundFloor(2),
		TakeProfitPrice: tpRaw.Round(2),
	}, nil
}
