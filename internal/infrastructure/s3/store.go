package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

// API — подмножество клиента S3, которое нужно хранилищу (в тестах подменяется фейком).
type API interface {
	s3v2.ListObjectsV2APIClient
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

var _ ports.IObjectStore = (*Store)(nil)

// Store реализует ports.IObjectStore поверх одного бакета.
type Store struct {
	api      API
	bucket   string
	pageSize int32
	log      *slog.Logger
}

// NewStore создаёт хранилище для бакета.
func NewStore(api API, bucket string, pageSize int32, log *slog.Logger) *Store {
	return &Store{api: api, bucket: bucket, pageSize: pageSize, log: log}
}

// Keys перечисляет ключи под prefix после startAfter постранично, итеративно через пагинатор.
// Следующая страница запрашивается только когда потребитель дочитал текущую.
// Перезапуск — новый вызов Keys с последним обработанным ключом.
func (s *Store) Keys(ctx context.Context, prefix, startAfter string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		in := &s3v2.ListObjectsV2Input{
			Bucket: aws.String(s.bucket),
			Prefix: aws.String(prefix),
		}
		if startAfter != "" {
			in.StartAfter = aws.String(startAfter)
		}
		if s.pageSize > 0 {
			in.MaxKeys = aws.Int32(s.pageSize)
		}

		pages := s3v2.NewListObjectsV2Paginator(s.api, in)
		for pages.HasMorePages() {
			page, err := pages.NextPage(ctx)
			if err != nil {
				yield("", fmt.Errorf("list s3://%s/%s: %w", s.bucket, prefix, err))
				return
			}
			s.log.Debug("s3 page listed", "prefix", prefix, "keys", len(page.Contents))
			for _, obj := range page.Contents {
				if !yield(aws.ToString(obj.Key), nil) {
					return
				}
			}
		}
	}
}

// Get читает объект целиком.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("get s3://%s/%s: %w: %w", s.bucket, key, domain.ErrObjectNotFound, err)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}
	return body, nil
}

// Put записывает объект. Повторная запись того же ключа перезаписывает его.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	s.log.Debug("s3 object written", "key", key, "bytes", len(body))
	return nil
}
