// @title AI模拟面试后端 API
// @version 1.0
// @description 模拟面试练习工具的后端服务：管理练习会话、AI出题、录音转写与回答点评。

// @host localhost:8000
// @BasePath /api

package main

import (
	"ai_interview_backend/internal/app"
	"ai_interview_backend/internal/config"
	"ai_interview_backend/pkg/configwatcher"
	"ai_interview_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：运行期替换大模型凭证，无需重启
	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadAIConfig)

	application.Run()
}
