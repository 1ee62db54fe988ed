package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig detém a configuração da aplicação.
type AppConfig struct {
	Port                string
	JWTSecret           string
	JWTTokenLifespan    time.Duration
	ResetTokenSecret    string
	ResetTokenLifespan  time.Duration
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	EnableDBSSL         bool
	Environment         string // "development", "staging", "production"
	LogLevel            string // "debug", "info", "warn", "error"
	FrontendBaseURL     string
	BenefitFormsDir     string
	FileStorageProvider string // "s3", "gcs" ou vazio para desabilitar backups
	AWSRegion           string
	AWSS3Bucket         string
	AWSSESEmailSender   string
	GCSProjectID        string
	GCSBucketName       string
	AppVersion          string
	// Adicionar outras configurações aqui
}

var Cfg AppConfig

// LoadConfig carrega a configuração da aplicação de variáveis de ambiente.
func LoadConfig() {
	// Carregar .env para desenvolvimento local, ignorar erro se não existir (para produção)
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: Arquivo .env não encontrado ou erro ao carregar:", err)
	}

	Cfg.Port = getEnv("PORT", "8080")
	Cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "a_very_secure_secret_key_please_change_me_32_chars_long")
	jwtLifespanHours, err := strconv.Atoi(getEnv("JWT_TOKEN_LIFESPAN_HOURS", "24"))
	if err != nil {
		log.Printf("Aviso: JWT_TOKEN_LIFESPAN_HOURS inválido, usando default 24h. Erro: %v", err)
		jwtLifespanHours = 24
	}
	Cfg.JWTTokenLifespan = time.Duration(jwtLifespanHours) * time.Hour

	// O verificador de tokens de reset de senha usa uma chave própria; se não
	// for definida, reutiliza o segredo JWT do servidor.
	Cfg.ResetTokenSecret = getEnv("RESET_TOKEN_SECRET", Cfg.JWTSecret)
	resetLifespanMinutes, err := strconv.Atoi(getEnv("RESET_TOKEN_LIFESPAN_MINUTES", "60"))
	if err != nil {
		log.Printf("Aviso: RESET_TOKEN_LIFESPAN_MINUTES inválido, usando default 60m. Erro: %v", err)
		resetLifespanMinutes = 60
	}
	Cfg.ResetTokenLifespan = time.Duration(resetLifespanMinutes) * time.Minute

	Cfg.DBHost = getEnv("DB_HOST", "localhost")
	Cfg.DBPort = getEnv("DB_PORT", "5432")
	Cfg.DBUser = getEnv("DB_USER", "harborhr_user")
	Cfg.DBPassword = getEnv("DB_PASSWORD", "harborhr_pass")
	Cfg.DBName = getEnv("DB_NAME", "harborhr_db")
	Cfg.EnableDBSSL = getEnvAsBool("DB_SSL_ENABLE", false)

	Cfg.Environment = getEnv("ENVIRONMENT", "development")
	Cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	Cfg.FrontendBaseURL = getEnv("FRONTEND_BASE_URL", "")

	Cfg.BenefitFormsDir = getEnv("BENEFIT_FORMS_DIR", "public/data")
	Cfg.FileStorageProvider = getEnv("FILE_STORAGE_PROVIDER", "")

	Cfg.AWSRegion = getEnv("AWS_REGION", "")
	Cfg.AWSS3Bucket = getEnv("AWS_S3_BUCKET", "")
	Cfg.AWSSESEmailSender = getEnv("AWS_SES_EMAIL_SENDER", "")

	Cfg.GCSProjectID = getEnv("GCS_PROJECT_ID", "")
	Cfg.GCSBucketName = getEnv("GCS_BUCKET_NAME", "")

	Cfg.AppVersion = getEnv("APP_VERSION", "")

	log.Printf("Configuração carregada para o ambiente: %s", Cfg.Environment)
}

// getEnv retorna o valor de uma variável de ambiente ou um valor default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool retorna o valor booleano de uma variável de ambiente ou um valor default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Aviso: Variável de ambiente booleana '%s' com valor inválido '%s', usando default: %t. Erro: %v", key, valStr, defaultValue, err)
		return defaultValue
	}
	return valBool
}

func init() {
	LoadConfig() // Carregar config automaticamente na inicialização do pacote
}
