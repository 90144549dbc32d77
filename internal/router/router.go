package router

import (
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/config"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/handler"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/middleware"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/service"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter is the composition root: it builds each repository, service
// and handler once and wires them explicitly.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	formPaymentRepo := repository.NewFormPaymentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	ttl := time.Duration(cfg.JWT.ExpireHours) * time.Hour
	issue := func(userID uint) (string, error) {
		return util.GenerateToken(cfg.JWT.Secret, userID, ttl)
	}
	digester := service.NewPBKDF2Digester(cfg.Security.DigestSalt, cfg.Security.DigestIterations)

	userSvc := service.NewUserService(userRepo, digester, service.SystemClock, issue)
	accountSvc := service.NewAccountService(accountRepo, transactionRepo, service.SystemClock)
	formPaymentSvc := service.NewFormPaymentService(formPaymentRepo, transactionRepo, service.SystemClock)
	transactionSvc := service.NewTransactionService(transactionRepo, formPaymentSvc, userSvc, service.SystemClock)

	userHandler := handler.NewUserHandler(userSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)
	formPaymentHandler := handler.NewFormPaymentHandler(formPaymentSvc)
	transactionHandler := handler.NewTransactionHandler(transactionSvc)
	exportHandler := handler.NewExportHandler(transactionSvc)

	v1 := r.Group("/v1")

	// signup and login do not require a token
	v1.POST("/users", userHandler.Register)
	v1.POST("/users/auth", userHandler.Auth)

	protected := v1.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/users/me", userHandler.Me)
	protected.PUT("/users", userHandler.Update)

	protected.POST("/accounts", accountHandler.Create)
	protected.GET("/accounts", accountHandler.List)
	protected.GET("/accounts/balances", accountHandler.Balances)
	protected.GET("/accounts/:id", accountHandler.Get)

	protected.POST("/formspayment", formPaymentHandler.Create)
	protected.GET("/formspayment", formPaymentHandler.List)
	protected.GET("/formspayment/balances", formPaymentHandler.Balances)
	protected.GET("/formspayment/:id", formPaymentHandler.Get)

	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions", transactionHandler.List)
	protected.GET("/transactions/export/csv", exportHandler.ExportCSV)
	protected.GET("/transactions/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/transactions/:id", transactionHandler.Get)

	return r
}
