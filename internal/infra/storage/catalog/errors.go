package catalog

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда здание не найдено (или удалено)
	ErrBuildingNotFound = errors.New("catalog.repository: building not found")

	// ErrRoomNotFound возвращается, когда комната не найдена (или удалена)
	ErrRoomNotFound = errors.New("catalog.repository: room not found")

	// ErrDuplicateName возвращается при нарушении уникальности имени
	ErrDuplicateName = errors.New("catalog.repository: duplicate name")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
