// Package linkedlist реализует обобщённый связный список с явным
// состоянием "закрыт": закрытый список доступен только для чтения.
package linkedlist

import (
	"github.com/google/uuid"
	"github.com/sirkon/deepequal"
)

// List связный список значений типа T. Каждый элемент помнит своего
// предшественника, ссылка на него соответствует текущему порядку
// элементов после любых изменений списка.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	items  []*Item[T]
	closed bool

	id  uuid.UUID
	eq  func(a, b T) bool
	log Logger
}

// New конструктор списка с данными начальными значениями в их порядке.
func New[T any](values []T, opts ...Option[T]) *List[T] {
	l := &List[T]{
		items: buildItems(values),
		id:    uuid.New(),
		eq:    deepEqual[T],
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(l, optionRestriction{})
	}

	return l
}

// derive новый открытый список с данными значениями, логгером и сравнением
// текущего.
func (l *List[T]) derive(values []T) *List[T] {
	return &List[T]{
		items: buildItems(values),
		id:    uuid.New(),
		eq:    l.eq,
		log:   l.log,
	}
}

// relink пересоздаёт элементы начиная с позиции from, чтобы ссылки
// на предшественников соответствовали текущему порядку.
func (l *List[T]) relink(from int) {
	for i := from; i < len(l.items); i++ {
		var prev *Item[T]
		if i > 0 {
			prev = l.items[i-1]
		}

		l.items[i] = &Item[T]{
			value:    l.items[i].value,
			previous: prev,
		}
	}
}

func deepEqual[T any](a, b T) bool {
	return deepequal.Equal(a, b)
}
