package notify

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"tradehook/pkg/logger"
)

// Discord webhook通知
// webhookURL为空时降级为本地日志，不发起任何网络请求
type Discord struct {
	webhookURL string
	c          *resty.Client
}

func NewDiscord(webhookURL string) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		c:          resty.New().SetTimeout(10 * time.Second),
	}
}

func (d *Discord) Send(msg string) {
	if d == nil || d.webhookURL == "" {
		logger.Info("No chat webhook configured.", logger.Pair("message", msg))
		return
	}
	resp, err := d.c.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"content": msg}).
		Post(d.webhookURL)
	if err != nil {
		logger.Errorf("chat send failed: %v", err)
		return
	}
	// Discord接受消息返回204
	if resp.StatusCode() != http.StatusNoContent {
		logger.Errorf("chat response error: %s", resp.String())
	}
}

func (d *Discord) Sendf(format string, args ...interface{}) {
	d.Send(fmt.Sprintf(format, args...))
}
