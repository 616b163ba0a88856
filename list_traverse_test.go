package linkedlist_test

import (
	"strconv"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/testlog"

	"github.com/sirkon/linkedlist"
	"github.com/sirkon/linkedlist/internal/errkind"
)

func TestForEach(t *testing.T) {
	l := linkedlist.New([]int{5, 8, 3})

	var values []int
	var previous []*int
	res, err := l.ForEach(func(item, prev *linkedlist.Item[int], list *linkedlist.List[int]) {
		if list != l {
			t.Error("callback must receive the list itself")
		}
		if item.Previous() != prev {
			t.Error("previous argument must be the item's previous")
		}

		values = append(values, item.Value())
		if prev == nil {
			previous = append(previous, nil)
			return
		}
		v := prev.Value()
		previous = append(previous, &v)
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "for each"))
		return
	}
	if res != l {
		t.Error("for each must return the list itself")
	}

	five, eight := 5, 8
	deepequal.SideBySide(t, "values", []int{5, 8, 3}, values)
	deepequal.SideBySide(t, "previous values", []*int{nil, &five, &eight}, previous)

	t.Run("mutation inside does not break iteration", func(t *testing.T) {
		l := linkedlist.New([]int{1, 2})
		var seen []int
		_, err := l.ForEach(func(item, _ *linkedlist.Item[int], list *linkedlist.List[int]) {
			seen = append(seen, item.Value())
			if _, err := list.Push(item.Value() * 10); err != nil {
				testlog.Error(t, errors.Wrap(err, "push from callback"))
			}
		})
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "for each"))
			return
		}
		deepequal.SideBySide(t, "seen", []int{1, 2}, seen)
		deepequal.SideBySide(t, "values", []int{1, 2, 10, 20}, l.ToArray())
	})
}

func TestFilter(t *testing.T) {
	l := linkedlist.New([]int{1, 2, 3, 4, 5, 6})
	even, err := l.Filter(func(item, _ *linkedlist.Item[int], _ *linkedlist.List[int]) bool {
		return item.Value()%2 == 0
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "filter"))
		return
	}

	deepequal.SideBySide(t, "filtered", []int{2, 4, 6}, even.ToArray())
	deepequal.SideBySide(t, "original", []int{1, 2, 3, 4, 5, 6}, l.ToArray())
	if even.PeekFirst().Previous() != nil {
		t.Error("filtered list must have its own previous chain")
	}

	t.Run("nothing matched", func(t *testing.T) {
		none, err := l.Filter(func(*linkedlist.Item[int], *linkedlist.Item[int], *linkedlist.List[int]) bool {
			return false
		})
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "filter"))
			return
		}
		if none.Len() != 0 {
			t.Errorf("empty result expected, got %v", none.ToArray())
		}
	})

	t.Run("filtered from closed is open", func(t *testing.T) {
		closed := linkedlist.New([]int{1, 2}).Freeze()
		res, err := closed.Filter(func(*linkedlist.Item[int], *linkedlist.Item[int], *linkedlist.List[int]) bool {
			return true
		})
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "filter"))
			return
		}
		if res.IsClosed() {
			t.Error("filtered list must be open")
		}
	})
}

func TestSome(t *testing.T) {
	l := linkedlist.New([]int{1, 2, 3, 4})

	var calls int
	found, err := l.Some(func(item, _ *linkedlist.Item[int], _ *linkedlist.List[int]) bool {
		calls++
		return item.Value() == 2
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "some"))
		return
	}
	if !found {
		t.Error("2 must be found")
	}
	if calls != 2 {
		t.Errorf("some must stop at the first match, got %d calls", calls)
	}

	found, err = l.Some(func(item, _ *linkedlist.Item[int], _ *linkedlist.List[int]) bool {
		return item.Value() > 10
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "some"))
		return
	}
	if found {
		t.Error("nothing must be found")
	}

	found, err = linkedlist.New[int](nil).Some(func(*linkedlist.Item[int], *linkedlist.Item[int], *linkedlist.List[int]) bool {
		return true
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "some over empty"))
		return
	}
	if found {
		t.Error("empty list has nothing to find")
	}
}

func TestMap(t *testing.T) {
	l := linkedlist.New([]int{1, 2, 3})
	res, err := linkedlist.Map(l, func(item, prev *linkedlist.Item[int], _ *linkedlist.List[int]) string {
		if prev == nil {
			return strconv.Itoa(item.Value())
		}
		return strconv.Itoa(prev.Value()) + "->" + strconv.Itoa(item.Value())
	})
	if err != nil {
		testlog.Error(t, errors.Wrap(err, "map"))
		return
	}

	deepequal.SideBySide(t, "mapped", []string{"1", "1->2", "2->3"}, res.ToArray())
	deepequal.SideBySide(t, "original", []int{1, 2, 3}, l.ToArray())
	if res.IsClosed() {
		t.Error("mapped list must be open")
	}
}

func TestNilCallbacks(t *testing.T) {
	l := linkedlist.New([]int{1})

	checks := map[string]func() error{
		"for each": func() error {
			_, err := l.ForEach(nil)
			return err
		},
		"filter": func() error {
			_, err := l.Filter(nil)
			return err
		},
		"some": func() error {
			_, err := l.Some(nil)
			return err
		},
		"map": func() error {
			_, err := linkedlist.Map[int, int](l, nil)
			return err
		},
	}
	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			err := check()
			if !errkind.Expect(t, err, linkedlist.ErrorTypeCheck) {
				return
			}
			if !linkedlist.IsTypeCheck(err) {
				t.Error("type check predicate must match")
			}
		})
	}
}
