package broker

import (
	"context"

	"github.com/shopspring/decimal"

	"tradehook/internal/model"
)

// Broker 券商能力抽象，便于在测试中替换为fake实现
type Broker interface {
	// 查询账户总资产
	GetEquity(ctx context.Context) (decimal.Decimal, error)
	// 提交括号订单
	PlaceOrder(ctx context.Context, order *model.BracketOrder) (*model.OrderResponse, error)
}
