package domain

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrMalformedPosting — у вакансии нет company или title, ключ кэша построить нельзя.
	ErrMalformedPosting = errors.New("malformed posting")
	// ErrMalformedFile — строка файла не является JSON-объектом.
	ErrMalformedFile = errors.New("malformed postings file")
	// ErrInferenceUnavailable — промахи были, но модель не вернула ни одного ответа.
	ErrInferenceUnavailable = errors.New("seniority inference unavailable")
	// ErrObjectNotFound — объекта нет в хранилище (удалён между листингом и чтением).
	ErrObjectNotFound = errors.New("object not found")
)

// TransientError помечает ошибку как временную: пул воркеров повторяет такие задачи с бэкоффом.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	if e == nil || e.Err == nil {
		return "transient error"
	}
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTransient — повтор может помочь: явная TransientError, недоступная модель, истёкший дедлайн
// или сетевая ошибка.
func IsTransient(err error) bool {
	var te *TransientError
	var ne net.Error
	return errors.As(err, &te) ||
		errors.Is(err, ErrInferenceUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &ne)
}
