package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTimeConflict возвращается, когда вставка нарушила ограничение исключения по интервалам
	ErrTimeConflict = errors.New("reservation.repository: overlapping active reservation")

	// ErrTransactionRequired возвращается, когда блокировка запрошена вне транзакции
	ErrTransactionRequired = errors.New("reservation.repository: transaction required")

	// ErrStatusChanged возвращается, когда статус изменился между чтением и записью
	ErrStatusChanged = errors.New("reservation.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
