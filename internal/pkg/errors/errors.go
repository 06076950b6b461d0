package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или сессия не найдены
	// (в том числе при повторной отправке уже завершённой попытки).
	ErrNotFound = errors.New("record not found")

	// ErrForbidden используется, когда ключ администратора не совпадает.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных
	// (пустые фамилия/имя/группа при старте попытки).
	ErrValidation = errors.New("validation failed")

	// ErrSourceUnavailable используется, когда файл с вопросами недоступен.
	ErrSourceUnavailable = errors.New("question source unavailable")

	// ErrMalformedSource используется, когда в файле с вопросами нет обязательных колонок.
	ErrMalformedSource = errors.New("malformed question source")

	// ErrInsufficientQuestions используется, когда валидных вопросов меньше,
	// чем размер выборки на одну попытку.
	ErrInsufficientQuestions = errors.New("insufficient questions")
)
