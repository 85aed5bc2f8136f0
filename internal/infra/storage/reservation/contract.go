package reservation

import (
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// LockNamespaceRoom пространство advisory-блокировок по комнатам
const LockNamespaceRoom = 4201
