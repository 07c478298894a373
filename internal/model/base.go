// Package model содержит модели данных приложения.
package model

import (
	"fmt"
	"time"
)

// DateFormat формат даты контента (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ValidateDate проверяет, что строка является датой контента в формате YYYY-MM-DD
func ValidateDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("invalid content date %q: %w", date, err)
	}
	return nil
}

// BatchSize количество элементов контента, генерируемых на один день для одного потока
const BatchSize = 5

// Stream представляет поток ежедневного контента
type Stream string

const (
	StreamLessons Stream = "lessons"
	StreamTips    Stream = "tips"
)

// String возвращает строковое представление потока
func (s Stream) String() string {
	return string(s)
}

// ValidationError представляет ошибку валидации поля
type ValidationError struct {
	Field   string
	Message string
}

// Error реализует интерфейс error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors представляет набор ошибок валидации
type ValidationErrors []ValidationError

// Error реализует интерфейс error
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := e[0].Error()
	for _, err := range e[1:] {
		msg += "; " + err.Error()
	}
	return msg
}
