package linkedlist

import "github.com/sirkon/errors"

const (
	// ErrorTypeCheck аргумент имеет неподходящий тип или форму.
	ErrorTypeCheck errors.Const = "type check failed"

	// ErrorListClosed попытка изменить закрытый список.
	ErrorListClosed errors.Const = "this linked list has been closed"

	// ErrorAlreadyClosed повторное закрытие списка.
	ErrorAlreadyClosed errors.Const = "this linked list has already been closed"

	// ErrorIndexOutOfRange индекс вставки вне диапазона [0, длина].
	ErrorIndexOutOfRange errors.Const = "index out of range"
)

// IsTypeCheck проверка, что ошибка вызвана неподходящим типом аргумента.
func IsTypeCheck(err error) bool {
	return errors.Is(err, ErrorTypeCheck)
}

// IsListClosed проверка, что ошибка вызвана попыткой изменить закрытый список.
func IsListClosed(err error) bool {
	return errors.Is(err, ErrorListClosed)
}

// IsAlreadyClosed проверка, что ошибка вызвана повторным закрытием списка.
func IsAlreadyClosed(err error) bool {
	return errors.Is(err, ErrorAlreadyClosed)
}

// IsIndexOutOfRange проверка, что ошибка вызвана индексом вне допустимого диапазона.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrorIndexOutOfRange)
}

func errNilCallback(op string) error {
	return errors.Wrap(ErrorTypeCheck, op).Str("reason", "callback must not be nil")
}
