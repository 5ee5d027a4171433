package slot

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда тренер уже занят в этом слоте
	// (нарушение уникального индекса или конфликт сериализации)
	ErrSlotAlreadyBooked = errors.New("slot.repository: trainer already booked for this date and bucket")

	// ErrStatusMismatch возвращается, когда текущий статус слота не совпал с ожидаемым
	ErrStatusMismatch = errors.New("slot.repository: slot status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation      = pq.ErrorCode("23505")
	pgSerializationFailure = pq.ErrorCode("40001")
	pgDeadlockDetected     = pq.ErrorCode("40P01")
)

// IsWriteConflict сообщает, что err вызван гонкой за тот же слот:
// нарушение уникального индекса, сбой сериализации или deadlock.
// Используется после DoSerializable, т.к. конфликт может проявиться при COMMIT.
func IsWriteConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSlotAlreadyBooked) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation, pgSerializationFailure, pgDeadlockDetected:
			return true
		}
	}
	return false
}
