package conf

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 配置加载（API密钥等）
// 密钥类配置优先从环境变量读取（支持 keys.env / .env），yaml 作为兜底

type WebhookConfig struct {
	Secret string `yaml:"secret"`
}

// Broker 券商API配置
type Broker struct {
	Key     string `yaml:"key" validate:"required"`
	Secret  string `yaml:"secret" validate:"required"`
	BaseURL string `yaml:"base-url" validate:"required,url"`
}

// Chat 聊天通知配置，webhook-url为空时通知降级为本地日志
type Chat struct {
	WebhookURL string `yaml:"webhook-url"`
}

// RiskConfig 仓位风控参数
type RiskConfig struct {
	RiskPercent    float64 `yaml:"risk-percent"`     // 每笔交易承受的资金风险比例
	StopLossPerc   float64 `yaml:"stop-loss-perc"`   // 止损比例
	TakeProfitPerc float64 `yaml:"take-profit-perc"` // 止盈比例
}

// TradeLogConfig 本地成交记录文件
type TradeLogConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Webhook  WebhookConfig  `yaml:"webhook"`
	Broker   Broker         `yaml:"broker"`
	Chat     Chat           `yaml:"chat"`
	Risk     RiskConfig     `yaml:"risk"`
	TradeLog TradeLogConfig `yaml:"trade-log"`
	Log      LogConfig      `yaml:"log"`
}

var AppConfig Config

func LoadConfig(path string) error {
	// 兼容原始部署方式：密钥放在 keys.env 或者 .env 中
	_ = godotenv.Load("keys.env")
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	applyEnv(&AppConfig)
	applyDefaults(&AppConfig)
	return nil
}

// applyEnv 环境变量覆盖yaml中的同名配置
func applyEnv(c *Config) {
	if v := os.Getenv("ALPACA_KEY"); v != "" {
		c.Broker.Key = v
	}
	if v := os.Getenv("ALPACA_SECRET"); v != "" {
		c.Broker.Secret = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.Broker.BaseURL = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK"); v != "" {
		c.Chat.WebhookURL = v
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		c.Webhook.Secret = v
	}
	if v := os.Getenv("LISTEN"); v != "" {
		c.Listen = v
	}
}

func applyDefaults(c *Config) {
	if c.AppName == "" {
		c.AppName = "tradehook"
	}
	if c.Listen == "" {
		c.Listen = ":8090"
	}
	if c.MaxPingCount == 0 {
		c.MaxPingCount = 10
	}
	if c.Risk.RiskPercent == 0 {
		c.Risk.RiskPercent = 0.01 // 1% of total equity per trade
	}
	if c.Risk.StopLossPerc == 0 {
		c.Risk.StopLossPerc = 0.01 // 1.0% SL
	}
	if c.Risk.TakeProfitPerc == 0 {
		c.Risk.TakeProfitPerc = 0.015 // 1.5% TP
	}
	if c.TradeLog.Path == "" {
		c.TradeLog.Path = "trades_log.csv"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.FileName == "" {
		c.Log.FileName = "logs/tradehook.log"
	}
}
