package main

import (
	"log"

	_ "fraud-engine/docs"
	"fraud-engine/internal/app"
)

// @title           Fraud Detection API
// @version         1.0
// @description     Оценка риска платежных транзакций в реальном времени: правила, профиль пользователя и скорость операций
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	if err := app.BuildFraudLayer(); err != nil {
		log.Fatalf("Ошибка сборки слоя fraud: %v", err)
	}
	app.BuildAuditLayer()
	app.BuildHealthLayer()

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
