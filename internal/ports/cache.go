package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// ICache — контракт key-value кэша. Ключ — "company:title", значение — уровень сеньорности строкой.
// Отсутствие ключа — found == false, а не ошибка.
type ICache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
}

// ICursorStore — хранит курсор бакета: последний ключ, до которого все файлы обработаны.
type ICursorStore interface {
	LastKey(ctx context.Context) (key string, found bool, err error)
	SetLastKey(ctx context.Context, key string) error
}
