package router

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/handler"
	"github.com/spandan-mozumder/solfund/internal/identity"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "solfund",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		signed := signatureMiddleware()

		// 平台状态相关路由
		stateHandler := handler.NewStateHandler(db, cfg.Ledger)
		state := v1.Group("/state")
		{
			state.POST("/initialize", signed, stateHandler.Initialize)
			state.PUT("/settings", signed, stateHandler.UpdatePlatformSettings)
			state.GET("", stateHandler.GetState)
		}
		v1.GET("/stats", stateHandler.GetPlatformStats)

		// 活动相关路由
		campaignHandler := handler.NewCampaignHandler(db, cfg.Ledger)
		transactionHandler := handler.NewTransactionHandler(db, cfg.Ledger)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("", signed, campaignHandler.CreateCampaign)
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:cid", campaignHandler.GetCampaign)
			campaigns.PUT("/:cid", signed, campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:cid", signed, campaignHandler.DeleteCampaign)
			campaigns.GET("/:cid/stats", campaignHandler.GetCampaignStats)
			campaigns.GET("/:cid/transactions", transactionHandler.GetCampaignTransactions)
			campaigns.POST("/:cid/donations", signed, transactionHandler.Donate)
			campaigns.POST("/:cid/withdrawals", signed, transactionHandler.Withdraw)
		}

		// 资金账户相关路由
		accountHandler := handler.NewAccountHandler(db)
		accounts := v1.Group("/accounts")
		{
			accounts.POST("/deposit", accountHandler.Deposit)
			accounts.GET("/:address", accountHandler.GetBalance)
			accounts.GET("/:address/transactions", transactionHandler.GetOwnerTransactions)
		}
	}

	return r
}

// 签名验证中间件，恢复出的身份写入上下文供处理器使用
// 写操作一律要求调用者证明自己持有所声明身份的私钥
func signatureMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		signer := c.GetHeader("X-Signer")
		signature := c.GetHeader("X-Signature")
		if !identity.IsValid(signer) || signature == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing signer or signature"})
			return
		}

		body, err := c.GetRawData()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		// 验签消费了请求体，恢复给后续的 JSON 绑定
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		// 签名覆盖请求方法、路径和原文，防止签名被挪用到别的操作上
		payload := append([]byte(c.Request.Method+c.Request.URL.Path), body...)
		if err := identity.Verify(signer, signature, payload); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
			return
		}

		c.Set(handler.ContextCallerKey, identity.Normalize(signer))
		c.Next()
	}
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Signer, X-Signature")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
