package ban

import "errors"

var (
	// ErrBanNotFound возвращается, когда бан не найден
	ErrBanNotFound = errors.New("ban.repository: ban not found")

	// ErrAlreadyRevoked возвращается, когда бан уже отозван
	ErrAlreadyRevoked = errors.New("ban.repository: ban already revoked")

	// ErrTransactionRequired возвращается, когда блокировка запрошена вне транзакции
	ErrTransactionRequired = errors.New("ban.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ban.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ban.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ban.repository: failed to scan row")
)
