package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"account_service/internal/api/handlers"
	"account_service/internal/middleware"
	"account_service/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	accountHandler := handlers.NewAccountHandler(services.Account)

	// 共用中間件：安全標頭與 CORS
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	// 已註冊路徑上使用未註冊的方法時回應 405
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"status":  http.StatusMethodNotAllowed,
			"error":   http.StatusText(http.StatusMethodNotAllowed),
			"message": "該路徑不支援此方法",
		})
	})

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  http.StatusNotFound,
			"error":   http.StatusText(http.StatusNotFound),
			"message": "找不到該路徑",
		})
	})

	// 根路徑與基本的健康檢查
	r.GET("/", accountHandler.Index)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// 帳戶資源
	accounts := r.Group("/accounts")
	{
		accounts.GET("", accountHandler.ListAccounts)      // 列出所有帳戶
		accounts.POST("", accountHandler.CreateAccount)    // 建立帳戶
		accounts.GET("/:id", accountHandler.GetAccount)    // 取得單一帳戶
		accounts.PUT("/:id", accountHandler.UpdateAccount) // 更新帳戶
		accounts.DELETE("/:id", accountHandler.DeleteAccount)
	}
}
