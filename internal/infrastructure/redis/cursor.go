package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"jobSeniority/internal/ports"
)

// DefaultCursorKey — ключ Redis, под которым хранится курсор бакета.
const DefaultCursorKey = "last_key"

var _ ports.ICursorStore = (*CursorStore)(nil)

// CursorStore хранит последний обработанный ключ бакета в том же Redis, что и кэш.
type CursorStore struct {
	cli *Client
	key string
}

// NewCursorStore создаёт хранилище курсора. Пустой key — DefaultCursorKey.
func NewCursorStore(cli *Client, key string) *CursorStore {
	if key == "" {
		key = DefaultCursorKey
	}
	return &CursorStore{cli: cli, key: key}
}

// LastKey возвращает курсор. found == false, если проходов ещё не было.
func (s *CursorStore) LastKey(ctx context.Context) (string, bool, error) {
	v, err := s.cli.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// SetLastKey сдвигает курсор.
func (s *CursorStore) SetLastKey(ctx context.Context, key string) error {
	return s.cli.Set(ctx, s.key, key, 0).Err()
}
