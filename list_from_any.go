package linkedlist

import (
	"fmt"
	"reflect"

	"github.com/sirkon/errors"
)

// FromAny конструктор списка из значения неизвестного заранее типа.
// Подходят nil, []T, *List[T] и любые слайсы или массивы, элементы
// которых присваиваются в T. Для всего остального возвращается
// ErrorTypeCheck.
func FromAny[T any](src any, opts ...Option[T]) (*List[T], error) {
	switch v := src.(type) {
	case nil:
		return New[T](nil, opts...), nil
	case []T:
		return New(v, opts...), nil
	case *List[T]:
		if v == nil {
			return nil, errors.Wrap(ErrorTypeCheck, "build list from nil list")
		}
		return New(v.ToArray(), opts...), nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrap(ErrorTypeCheck, "build list from dynamic source").
			Str("source-type", fmt.Sprintf("%T", src)).
			Str("reason", "must be a slice or an array")
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	values := make([]T, rv.Len())
	for i := range values {
		e := rv.Index(i)
		if e.Kind() == reflect.Interface {
			if e.IsNil() && nillable(target) {
				// values[i] уже нулевое значение, то есть nil.
				continue
			}
			if !e.IsNil() {
				e = e.Elem()
			}
		}

		if !e.Type().AssignableTo(target) {
			return nil, errors.Wrap(ErrorTypeCheck, "build list from dynamic source").
				Str("source-type", fmt.Sprintf("%T", src)).
				Int("element-index", i).
				Str("element-type", e.Type().String()).
				Str("want-type", target.String())
		}

		reflect.ValueOf(&values[i]).Elem().Set(e)
	}

	return New(values, opts...), nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
