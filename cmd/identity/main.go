package main

import (
	stdLog "log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/napat-dev/lending-service/identity/app"
	"github.com/napat-dev/lending-service/identity/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
