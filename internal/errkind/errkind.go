// Package errkind проверки вида ошибок в тестах.
package errkind

import (
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/testlog"
)

// Expect проверяет, что err имеет вид target. Подходящая ошибка
// выводится в лог теста и возвращается true, любая другая считается
// ошибкой теста.
func Expect(t testing.TB, err error, target error) bool {
	t.Helper()

	switch {
	case err == nil:
		t.Errorf("%s error was expected, got nothing", target)
		return false
	case !errors.Is(err, target):
		t.Errorf("%s error was expected", target)
		testlog.Error(t, err)
		return false
	}

	testlog.Log(t, err)
	return true
}
