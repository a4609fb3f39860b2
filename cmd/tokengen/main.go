// Command tokengen выпускает JWT для сервисов, вызывающих /api/v1.
//
//	JWT_SECRET=... go run ./cmd/tokengen -client checkout-api
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fraud-engine/internal/config"
	"fraud-engine/internal/service"
)

func main() {
	clientID := flag.String("client", "", "client id of the calling service")
	flag.Parse()

	if *clientID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET не задан")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	auth := service.NewAuthService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer, logger)

	token, err := auth.IssueToken(*clientID)
	if err != nil {
		log.Fatalf("Ошибка выпуска токена: %v", err)
	}
	fmt.Println(token)
}
