package router

import (
	"github.com/gin-gonic/gin"

	"tradehook/internal/handler/ping"
	"tradehook/internal/handler/webhook"
	"tradehook/internal/middleware"
)

type ApiRouter struct {
	wh            *webhook.Handler
	webhookSecret string
}

func NewApiRouter(wh *webhook.Handler, webhookSecret string) *ApiRouter {
	return &ApiRouter{wh: wh, webhookSecret: webhookSecret}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.GET("/ping", ping.Ping())

	// 签名校验在请求体解析之前执行
	g.POST("/webhook", middleware.VerifySignature(api.webhookSecret), api.wh.HandleWebhook())
}
