package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"student-registry/config"
	"student-registry/internal/repository"
	"student-registry/internal/service"
	"student-registry/internal/ui"
	"student-registry/pkg/database"
	applogger "student-registry/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.String("db_path", cfg.Database.Path),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开数据库（进程内唯一句柄，退出时关闭）
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Error("数据库打开失败", zap.Error(err))
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("关闭数据库失败", zap.Error(err))
		}
	}()

	// 3.1 确保表结构存在
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Error("初始化表结构失败", zap.Error(err))
		return err
	}

	// 4. 依赖注入: Repository → Service → UI
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	app := ui.New(svc, cfg.Export.Dir, logger)

	// 5. 事件循环，窗口关闭后释放资源
	if err := app.Run(); err != nil {
		logger.Error("界面异常退出", zap.Error(err))
		return fmt.Errorf("界面异常退出: %w", err)
	}

	logger.Info("应用已退出")
	return nil
}
