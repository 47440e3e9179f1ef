package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehook/internal/consts"
)

// VerifySignature 校验webhook请求体的HMAC-SHA256签名
// secret为空时不启用校验，保持开放（兼容不带签名的告警源）
func VerifySignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		signature := c.GetHeader(consts.SignatureHeader)
		if signature == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing signature"})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Failed to read body"})
			return
		}
		// body还要留给后面的handler解析
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		if !verifySignature(body, signature, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid signature"})
			return
		}
		c.Next()
	}
}

func verifySignature(body []byte, signatureHeader, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	expectedMAC := h.Sum(nil)
	providedMAC, err := hex.DecodeString(signatureHeader)
	if err != nil {
		return false
	}
	return hmac.Equal(providedMAC, expectedMAC)
}
