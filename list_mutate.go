package linkedlist

import (
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// Push добавление одного или нескольких значений в конец списка.
// Возвращает сам список для цепочки вызовов.
func (l *List[T]) Push(values ...T) (*List[T], error) {
	if err := l.checkOpen("push"); err != nil {
		return l, err
	}

	for _, v := range values {
		var prev *Item[T]
		if len(l.items) > 0 {
			prev = l.items[len(l.items)-1]
		}

		l.items = append(l.items, &Item[T]{
			value:    v,
			previous: prev,
		})
	}

	return l, nil
}

// Pop удаление последнего элемента списка с его возвратом.
// Для пустого списка возвращает nil без ошибки.
func (l *List[T]) Pop() (*Item[T], error) {
	if err := l.checkOpen("pop"); err != nil {
		return nil, err
	}

	if len(l.items) == 0 {
		return nil, nil
	}

	last := len(l.items) - 1
	item := l.items[last]
	l.items[last] = nil // для упрощения работы GC
	l.items = l.items[:last]

	return item, nil
}

// Insert вставка значения на позицию index. Допустимы позиции от 0 до
// длины списка включительно, вставка на позицию равную длине означает
// добавление в конец.
func (l *List[T]) Insert(index int, value T) (*List[T], error) {
	if err := l.checkOpen("insert"); err != nil {
		return l, err
	}

	if index < 0 || index > len(l.items) {
		err := errors.Wrap(ErrorIndexOutOfRange, "insert").
			Str("list-id", l.id.String()).
			Int("index", index).
			Int("length", len(l.items))
		l.log.MutationRejected(l.id, "insert", err)
		return l, err
	}

	l.items = slices.Insert(l.items, index, &Item[T]{value: value})
	l.relink(index)
	return l, nil
}

// Remove удаление первого элемента равного value. Возвращает true
// если элемент был найден и удалён.
func (l *List[T]) Remove(value T) (bool, error) {
	if err := l.checkOpen("remove"); err != nil {
		return false, err
	}

	i := slices.IndexFunc(l.items, func(item *Item[T]) bool {
		return l.eq(item.value, value)
	})
	if i < 0 {
		return false, nil
	}

	last := len(l.items) - 1
	copy(l.items[i:], l.items[i+1:])
	l.items[last] = nil // для упрощения работы GC
	l.items = l.items[:last]
	l.relink(i)

	return true, nil
}

// Clear удаление всех элементов списка.
func (l *List[T]) Clear() (*List[T], error) {
	if err := l.checkOpen("clear"); err != nil {
		return l, err
	}

	l.items = nil
	return l, nil
}

// Reverse разворот порядка элементов списка на месте. Ссылки на
// предшественников следуют новому порядку.
func (l *List[T]) Reverse() (*List[T], error) {
	if err := l.checkOpen("reverse"); err != nil {
		return l, err
	}

	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.relink(0)

	return l, nil
}

// Close закрытие списка, после которого любые изменения запрещены.
// Повторное закрытие даёт ErrorAlreadyClosed.
func (l *List[T]) Close() (*List[T], error) {
	if l.closed {
		err := errors.Wrap(ErrorAlreadyClosed, "close").Str("list-id", l.id.String())
		l.log.MutationRejected(l.id, "close", err)
		return l, err
	}

	l.closed = true
	l.log.Closed(l.id, len(l.items))
	return l, nil
}

func (l *List[T]) checkOpen(op string) error {
	if !l.closed {
		return nil
	}

	err := errors.Wrap(ErrorListClosed, op).Str("list-id", l.id.String())
	l.log.MutationRejected(l.id, op, err)
	return err
}
