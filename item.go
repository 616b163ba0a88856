package linkedlist

import "encoding/json"

// Item элемент списка: значение и ссылка на предшествующий элемент.
// Первый элемент списка не имеет предшественника.
//
// Элементы неизменяемы. Изменение порядка списка создаёт новые элементы
// начиная с первой затронутой позиции, уже выданные элементы сохраняют
// свою цепочку предшественников.
type Item[T any] struct {
	value    T
	previous *Item[T]
}

// Value значение лежащее в элементе.
func (i *Item[T]) Value() T {
	return i.value
}

// Previous предшествующий элемент или nil для первого элемента.
func (i *Item[T]) Previous() *Item[T] {
	return i.previous
}

// MarshalJSON для реализации json.Marshaler. Элемент представляется
// как {"value": ..., "previous": ...}, previous раскрывается до null.
func (i *Item[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON[T]{
		Value:    i.value,
		Previous: i.previous,
	})
}

type itemJSON[T any] struct {
	Value    T        `json:"value"`
	Previous *Item[T] `json:"previous"`
}

// buildItems создаёт цепочку элементов для данных значений.
func buildItems[T any](values []T) []*Item[T] {
	if len(values) == 0 {
		return nil
	}

	items := make([]*Item[T], len(values))
	var prev *Item[T]
	for i, v := range values {
		prev = &Item[T]{
			value:    v,
			previous: prev,
		}
		items[i] = prev
	}

	return items
}
