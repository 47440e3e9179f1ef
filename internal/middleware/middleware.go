package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GlobalMiddleware 全局中间件，作为Router加载到gin实例上
type GlobalMiddleware struct{}

func NewMiddleware() *GlobalMiddleware {
	return &GlobalMiddleware{}
}

func (m *GlobalMiddleware) Load(g *gin.Engine) {
	// panic不向客户端暴露5xx，统一收敛成400的detail结构
	g.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("%v", recovered)})
	}))
	g.Use(RequestId())
	g.Use(Logger)
}
