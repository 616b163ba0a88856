package linkedlist

import "github.com/google/uuid"

// Frozen закрытый список, у которого в принципе нет изменяющих методов.
// Функции обхода получают исходный закрытый список.
type Frozen[T any] struct {
	list *List[T]
}

// Freeze закрывает список, если он ещё не закрыт, и возвращает ручку
// только для чтения над ним.
func (l *List[T]) Freeze() *Frozen[T] {
	if !l.closed {
		l.closed = true
		l.log.Closed(l.id, len(l.items))
	}

	return &Frozen[T]{
		list: l,
	}
}

// Thaw открытая независимая копия замороженного списка.
func (f *Frozen[T]) Thaw() *List[T] {
	return f.list.derive(f.list.ToArray())
}

// Len длина списка.
func (f *Frozen[T]) Len() int {
	return f.list.Len()
}

// ID идентификатор списка.
func (f *Frozen[T]) ID() uuid.UUID {
	return f.list.ID()
}

// ToArray см. List.ToArray.
func (f *Frozen[T]) ToArray() []T {
	return f.list.ToArray()
}

// PeekFirst см. List.PeekFirst.
func (f *Frozen[T]) PeekFirst() *Item[T] {
	return f.list.PeekFirst()
}

// PeekLast см. List.PeekLast.
func (f *Frozen[T]) PeekLast() *Item[T] {
	return f.list.PeekLast()
}

// PeekList см. List.PeekList.
func (f *Frozen[T]) PeekList() []*Item[T] {
	return f.list.PeekList()
}

// MarshalJSON для реализации json.Marshaler.
func (f *Frozen[T]) MarshalJSON() ([]byte, error) {
	return f.list.MarshalJSON()
}

// String см. List.String.
func (f *Frozen[T]) String() string {
	return f.list.String()
}

// ForEach см. List.ForEach.
func (f *Frozen[T]) ForEach(cb Visitor[T]) (*Frozen[T], error) {
	if _, err := f.list.ForEach(cb); err != nil {
		return f, err
	}

	return f, nil
}

// Filter см. List.Filter. Результат открыт.
func (f *Frozen[T]) Filter(cb Predicate[T]) (*List[T], error) {
	return f.list.Filter(cb)
}

// Some см. List.Some.
func (f *Frozen[T]) Some(cb Predicate[T]) (bool, error) {
	return f.list.Some(cb)
}

// Copy независимая замороженная копия.
func (f *Frozen[T]) Copy() *Frozen[T] {
	return &Frozen[T]{
		list: f.list.Copy(),
	}
}

// MapFrozen то же, что и Map, для замороженного списка.
func MapFrozen[T, R any](f *Frozen[T], cb Mapper[T, R]) (*List[R], error) {
	return Map(f.list, cb)
}
