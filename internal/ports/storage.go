package ports

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mock.go -package=mocks

import (
	"context"
	"iter"
)

// IObjectStore — объектное хранилище (S3) с сырыми и обогащёнными файлами вакансий.
type IObjectStore interface {
	// Keys лениво перечисляет ключи под prefix строго после startAfter, в лексикографическом порядке.
	Keys(ctx context.Context, prefix, startAfter string) iter.Seq2[string, error]
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}
