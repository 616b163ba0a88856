package linkedlist

import "github.com/google/uuid"

// Option определение опции списка.
type Option[T any] func(l *List[T], _ optionRestriction)

type optionRestriction struct{}

// WithLogger задаёт логгер списка. nil игнорируется.
func WithLogger[T any](log Logger) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		if log == nil {
			return
		}

		l.log = log
	}
}

// WithEquality задаёт сравнение значений используемое в Remove.
// По-умолчанию значения сравниваются на глубокое равенство.
func WithEquality[T any](eq func(a, b T) bool) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		if eq == nil {
			return
		}

		l.eq = eq
	}
}

// WithID задаёт идентификатор списка вместо случайного.
func WithID[T any](id uuid.UUID) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.id = id
	}
}
