package main

import (
	"log"

	api "tradehook/cmd/tradehook"
	"tradehook/conf"
	"tradehook/internal/middleware"
	"tradehook/pkg/logger"
	"tradehook/pkg/recorder"
	"tradehook/pkg/validator"
)

// 启动服务（监听webhook）

/*
测试

BODY='{"action":"buy","ticker":"AAPL","price":189.5}'
SECRET="ab12cd34ef56abcdef1234567890abcdef1234567890abcdef1234567890"
SIGNATURE=$(echo -n $BODY | openssl dgst -sha256 -hmac $SECRET | sed 's/^.* //')

curl -X POST http://localhost:8090/webhook \
  -H "Content-Type: application/json" \
  -H "X-Signature: $SIGNATURE" \
  -d "$BODY"
*/

func main() {

	// 加载配置文件
	err := conf.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := conf.AppConfig
	logger.InitLogger(&appCfg.Log, appCfg.AppName)

	// 券商凭证缺失直接拒绝启动，聊天webhook缺失只降级
	if err := validator.Struct(appCfg.Broker); err != nil {
		logger.Fatalf("broker config invalid: %s", validator.Translate(err))
	}
	if appCfg.Chat.WebhookURL == "" {
		logger.Warnf("chat webhook not configured, notifications degrade to local log")
	}

	// 本地成交记录文件
	rec, err := recorder.NewCSVRecorder(appCfg.TradeLog.Path)
	if err != nil {
		logger.Fatalf("open trade log failed: %v", err)
	}

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		if err := rec.Close(); err != nil {
			logger.Errorf("close trade log failed: %v", err)
		}
		_ = logger.Sync()
	})
	srvRouter := api.InitRouter(&appCfg, rec)

	srv.Run(middleware.NewMiddleware(), srvRouter)
}
