package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"account_service/internal/api"
	"account_service/internal/config"
	"account_service/internal/models"
	"account_service/internal/repository"
	"account_service/internal/service"
	"account_service/internal/storage"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取設置，如數據庫連接信息和服務器地址等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	// 使用配置中的信息建立到 PostgreSQL 數據庫的連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 根據 Account 模型自動創建或更新數據庫表結構
	if err := db.AutoMigrate(&models.Account{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的地址啟動 HTTP 服務器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
