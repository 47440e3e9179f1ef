package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehook/pkg/errors"
)

// 响应结构固定：
// 成功 -> 200，任意JSON体
// 失败 -> 400 {"detail": "..."}，对外不区分失败原因，也从不返回5xx

// ErrorBody 失败响应体
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OK 发送成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Detail 把任意失败统一映射成400响应
func Detail(c *gin.Context, err error) {
	_, message := errors.DecodeErr(err)
	c.JSON(http.StatusBadRequest, ErrorBody{Detail: message})
}
