package auditservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("auditservice client: internal error")

	// ErrRejected возвращается, когда AuditService отклонил событие
	ErrRejected = errors.New("auditservice client: event rejected")
)
