package webhook

import (
	"github.com/gin-gonic/gin"

	"tradehook/internal/model"
	"tradehook/internal/notify"
	"tradehook/internal/service"
	"tradehook/pkg/errors"
	"tradehook/pkg/errors/ecode"
	"tradehook/pkg/response"
)

// 交易信号Webhook的接收器

type Handler struct {
	processor *service.SignalProcessor
	notifier  notify.Notifier
}

func NewHandler(p *service.SignalProcessor, n notify.Notifier) *Handler {
	return &Handler{
		processor: p,
		notifier:  n,
	}
}

// HandleWebhook 接收POST请求并解析为交易信号
func (h *Handler) HandleWebhook() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.WebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, errors.Wrap(err, ecode.MalformedSignal, "invalid request body"))
			return
		}

		// 无效action不算失败，短路返回，不触发任何券商调用
		if !model.OrderSide(req.Action).Valid() {
			response.OK(c, gin.H{"status": "invalid action"})
			return
		}

		sig, err := req.ParseSignal()
		if err != nil {
			h.fail(c, err)
			return
		}

		res, err := h.processor.Process(c.Request.Context(), sig)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.OK(c, gin.H{
			"status": req.Action + " order sent",
			"qty":    res.Qty,
		})
	}
}

// fail 所有失败统一收敛成400响应，同时尽力推送一条错误通知
func (h *Handler) fail(c *gin.Context, err error) {
	_, msg := errors.DecodeErr(err)
	h.notifier.Sendf("🔥 Webhook error: %s", msg)
	response.Detail(c, err)
}
