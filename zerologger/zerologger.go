// Package zerologger реализация linkedlist.Logger поверх zerolog.
package zerologger

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sirkon/linkedlist"
)

// New конструктор логгера списков пишущего в данный zerolog.Logger.
// Отказы в изменениях пишутся с уровнем warn, закрытия с уровнем debug.
func New(log zerolog.Logger) linkedlist.Logger {
	return &logger{
		log: log,
	}
}

type logger struct {
	log zerolog.Logger
}

// MutationRejected для реализации linkedlist.Logger.
func (l *logger) MutationRejected(listID uuid.UUID, operation string, err error) {
	l.log.Warn().
		Str("list-id", listID.String()).
		Str("operation", operation).
		Err(err).
		Msg("linked list mutation rejected")
}

// Closed для реализации linkedlist.Logger.
func (l *logger) Closed(listID uuid.UUID, length int) {
	l.log.Debug().
		Str("list-id", listID.String()).
		Int("length", length).
		Msg("linked list closed")
}
