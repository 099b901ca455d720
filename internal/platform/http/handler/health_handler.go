// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	welcomeMessage = "Welcome to Dawn Eats API"
	healthMessage  = "旦食 API 服务运行正常"
)

// Root は / のウェルカムメッセージを返します。
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage, "docs": "/docs"})
}

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": healthMessage})
	}
}
