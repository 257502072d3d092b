package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config — настройки S3. Переменные: SENIORITY_S3_*.
// Пустые Region/Profile — цепочка AWS по умолчанию (AWS_PROFILE, ~/.aws/config, IMDS).
type Config struct {
	Bucket       string `envconfig:"BUCKET" default:"momin-rl-data"`
	Region       string `envconfig:"REGION"`
	Profile      string `envconfig:"PROFILE"`
	Endpoint     string `envconfig:"ENDPOINT"` // MinIO / LocalStack
	UsePathStyle bool   `envconfig:"USE_PATH_STYLE" default:"false"`
	AccessKey    string `envconfig:"ACCESS_KEY"`
	SecretKey    string `envconfig:"SECRET_KEY"`
	PageSize     int32  `envconfig:"PAGE_SIZE" default:"1000"`
}

// NewClient загружает конфиг AWS SDK v2 и создаёт клиента S3.
func NewClient(ctx context.Context, cfg *Config) (*s3v2.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return s3v2.NewFromConfig(awsCfg, func(o *s3v2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}
