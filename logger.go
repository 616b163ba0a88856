package linkedlist

import "github.com/google/uuid"

//go:generate mockgen -destination=internal/mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock github.com/sirkon/linkedlist Logger

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// MutationRejected список отказался выполнять изменяющую операцию.
	MutationRejected(listID uuid.UUID, operation string, err error)

	// Closed список был закрыт, в нём осталось length элементов.
	Closed(listID uuid.UUID, length int)
}

type nopLogger struct{}

func (nopLogger) MutationRejected(uuid.UUID, string, error) {}

func (nopLogger) Closed(uuid.UUID, int) {}
