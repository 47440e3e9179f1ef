package api

import (
	"github.com/bwmarrin/snowflake"

	"tradehook/conf"
	"tradehook/internal/broker/alpaca"
	"tradehook/internal/handler/webhook"
	"tradehook/internal/notify"
	"tradehook/internal/risk"
	"tradehook/internal/router"
	"tradehook/internal/service"
	"tradehook/pkg/logger"
	"tradehook/pkg/recorder"
)

func InitRouter(appCfg *conf.Config, rec recorder.Recorder) Router {
	// 订单client_order_id生成器
	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatalf("init snowflake node failed: %v", err)
	}

	brokerClient := alpaca.NewClient(appCfg.Broker)
	notifier := notify.NewDiscord(appCfg.Chat.WebhookURL)
	sizer := risk.NewSizer(appCfg.Risk)

	processor := service.NewSignalProcessor(brokerClient, notifier, sizer, rec, node)
	wh := webhook.NewHandler(processor, notifier)

	return router.NewApiRouter(wh, appCfg.Webhook.Secret)
}
