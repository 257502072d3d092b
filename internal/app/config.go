package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"jobSeniority/internal/api/http"
	"jobSeniority/internal/infrastructure/click"
	"jobSeniority/internal/infrastructure/inference"
	"jobSeniority/internal/infrastructure/kafka"
	"jobSeniority/internal/infrastructure/mongo"
	"jobSeniority/internal/infrastructure/pg"
	"jobSeniority/internal/infrastructure/redis"
	"jobSeniority/internal/infrastructure/s3"
	"jobSeniority/internal/pkg/logger"
	"jobSeniority/internal/usecase/model"
	"jobSeniority/internal/usecase/processor"
)

const AppName = "SENIORITY"

// Бэкенды журнала обработанных файлов.
const (
	RunsBackendPG    = "pg"
	RunsBackendMongo = "mongo"
)

// Модели сервиса инференса.
const (
	ModelHeuristic = "heuristic"
	ModelGemini    = "gemini"
	ModelRandom    = "random"
)

// GrpcConfig — настройки gRPC-сервера модели. Переменные: SENIORITY_GRPC_HOST, SENIORITY_GRPC_PORT.
type GrpcConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"50051"`
}

// Config — конфиг пайплайна обогащения. Заполняется через envconfig с префиксом SENIORITY.
type Config struct {
	Log         logger.Config     `envconfig:"LOG"`
	Server      http.ServerConfig `envconfig:"SERVER"`
	Inference   inference.Config  `envconfig:"INFERENCE"`
	Redis       redis.Config      `envconfig:"REDIS"`
	S3          s3.Config         `envconfig:"S3"`
	Processor   processor.Config  `envconfig:"PROCESSOR"`
	RunsBackend string            `envconfig:"RUNS_BACKEND" default:"pg"` // pg | mongo
	DB          pg.Config         `envconfig:"DB"`
	Mongo       mongo.Config      `envconfig:"MONGO"`
	Kafka       kafka.Config      `envconfig:"KAFKA"`
	ClickHouse  click.Config      `envconfig:"CLICKHOUSE"`
}

// InferenceConfig — конфиг сервиса модели. Тот же префикс SENIORITY.
type InferenceConfig struct {
	Log    logger.Config      `envconfig:"LOG"`
	Grpc   GrpcConfig         `envconfig:"GRPC"`
	Model  string             `envconfig:"MODEL" default:"heuristic"` // heuristic | gemini | random
	Gemini model.GeminiConfig `envconfig:"GEMINI"`
}

// loadDotenv подтягивает .env из рабочей директории, если он есть.
func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	loadDotenv()

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadInferenceCfg загружает конфиг сервиса модели так же, как LoadCfg.
func LoadInferenceCfg() (InferenceConfig, error) {
	loadDotenv()

	var cfg InferenceConfig
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return InferenceConfig{}, err
	}
	return cfg, nil
}
