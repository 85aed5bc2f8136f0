package accessservice

// PermissionResponse ответ AccessService на проверку права
type PermissionResponse struct {
	UserID     int64  `json:"user_id"`
	Permission string `json:"permission"`
	Allowed    bool   `json:"allowed"`
}
