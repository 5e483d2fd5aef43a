// @title Exam Coach API
// @version 1.0
// @description Backend for timed FINRA/NASAA practice exams, answer drills, and study progress tracking.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"exam_coach_backend/internal/app"
	"exam_coach_backend/internal/config"
	"exam_coach_backend/pkg/configwatcher"
	"log"
	"path/filepath"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), application.ReloadConfig)

	application.Run()
}
