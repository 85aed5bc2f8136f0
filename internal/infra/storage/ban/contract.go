package ban

import (
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// LockNamespaceUser пространство advisory-блокировок по пользователям
const LockNamespaceUser = 4202
