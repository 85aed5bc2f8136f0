package facility

import (
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// singletonID единственная строка конфигурации
const singletonID = 1
