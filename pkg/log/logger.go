package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// L é o logger global estruturado (zap.Logger). Use para logging de alta performance.
	L *zap.Logger
	// S é o logger global sugarizado (zap.SugaredLogger). Use para conveniência (printf-style logging).
	S *zap.SugaredLogger
)

// Init inicializa os loggers globais L e S.
// logLevel pode ser "debug", "info", "warn", "error", "dpanic", "panic", "fatal".
// env pode ser "development" ou "production" (ou qualquer outra string para default para production).
func Init(logLevel string, env string) {
	var cfg zap.Config
	if strings.ToLower(env) == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Parse e define o nível de log
	level, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		// Default para info se o nível for inválido
		level = zapcore.InfoLevel
		zap.L().Warn("Nível de log inválido fornecido, usando 'info' como padrão.", zap.String("invalid_level", logLevel))
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Logging é fundamental; sem logger a aplicação não deve continuar.
		panic(fmt.Sprintf("Falha ao construir o logger zap: %v", err))
	}

	L = logger
	S = logger.Sugar()

	// Substituir o logger global do zap para que possa ser acessado via zap.L() e zap.S() em outros pacotes.
	zap.ReplaceGlobals(L)
}

// Sync descarrega logs em buffer. Chamar via defer em main().
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}

// init configura um logger padrão inicial. Pode ser re-inicializado explicitamente em main.go.
func init() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	Init(logLevel, appEnv)
}
