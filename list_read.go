package linkedlist

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// Len длина списка.
func (l *List[T]) Len() int {
	return len(l.items)
}

// IsClosed возвращает true если список был закрыт.
func (l *List[T]) IsClosed() bool {
	return l.closed
}

// ID идентификатор списка.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

// ToArray значения списка в их порядке в новом слайсе.
func (l *List[T]) ToArray() []T {
	values := make([]T, len(l.items))
	for i, item := range l.items {
		values[i] = item.value
	}

	return values
}

// PeekFirst первый элемент списка или nil если список пуст.
func (l *List[T]) PeekFirst() *Item[T] {
	if len(l.items) == 0 {
		return nil
	}

	return l.items[0]
}

// PeekLast последний элемент списка или nil если список пуст.
func (l *List[T]) PeekLast() *Item[T] {
	if len(l.items) == 0 {
		return nil
	}

	return l.items[len(l.items)-1]
}

// PeekList все элементы списка в их порядке в новом слайсе.
func (l *List[T]) PeekList() []*Item[T] {
	if len(l.items) == 0 {
		return []*Item[T]{}
	}

	return slices.Clone(l.items)
}

// MarshalJSON для реализации json.Marshaler. Список представляется
// массивом элементов вида {"value": ..., "previous": ...}, где previous
// рекурсивно раскрывается до null.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(l.PeekList())
	if err != nil {
		return nil, errors.Wrap(err, "marshal list items").Str("list-id", l.id.String())
	}

	return data, nil
}

// String отладочное текстовое представление списка, совпадает с MarshalJSON.
func (l *List[T]) String() string {
	data, err := l.MarshalJSON()
	if err != nil {
		return "%!v(" + err.Error() + ")"
	}

	return string(data)
}
