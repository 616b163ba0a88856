package linkedlist

// Visitor функция обхода элементов списка.
type Visitor[T any] func(item, previous *Item[T], list *List[T])

// Predicate функция отбора элементов списка.
type Predicate[T any] func(item, previous *Item[T], list *List[T]) bool

// Mapper функция преобразования элементов списка.
type Mapper[T, R any] func(item, previous *Item[T], list *List[T]) R

// Обходы работают по копии последовательности элементов, взятой до
// первого вызова функции, поэтому изменения списка из неё не влияют
// на сам обход.

// ForEach вызов cb для каждого элемента списка по порядку.
func (l *List[T]) ForEach(cb Visitor[T]) (*List[T], error) {
	if cb == nil {
		return l, errNilCallback("for each")
	}

	for _, item := range l.PeekList() {
		cb(item, item.previous, l)
	}

	return l, nil
}

// Filter новый открытый список из значений, для которых cb вернула true.
func (l *List[T]) Filter(cb Predicate[T]) (*List[T], error) {
	if cb == nil {
		return nil, errNilCallback("filter")
	}

	var values []T
	for _, item := range l.PeekList() {
		if cb(item, item.previous, l) {
			values = append(values, item.value)
		}
	}

	return l.derive(values), nil
}

// Some возвращает true если cb вернула true хотя бы для одного элемента.
// Обход прекращается на первом таком элементе.
func (l *List[T]) Some(cb Predicate[T]) (bool, error) {
	if cb == nil {
		return false, errNilCallback("some")
	}

	for _, item := range l.PeekList() {
		if cb(item, item.previous, l) {
			return true, nil
		}
	}

	return false, nil
}

// Map новый открытый список из результатов cb для каждого элемента l.
// Логгер нового списка берётся из l.
func Map[T, R any](l *List[T], cb Mapper[T, R]) (*List[R], error) {
	if cb == nil {
		return nil, errNilCallback("map")
	}

	items := l.PeekList()
	values := make([]R, 0, len(items))
	for _, item := range items {
		values = append(values, cb(item, item.previous, l))
	}

	return New(values, WithLogger[R](l.log)), nil
}

// Copy независимая копия списка с теми же значениями и состоянием закрытости.
func (l *List[T]) Copy() *List[T] {
	c := l.derive(l.ToArray())
	c.closed = l.closed
	return c
}
