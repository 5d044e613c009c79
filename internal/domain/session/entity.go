package session

// Key names a value held in a browser session.
type Key string

const (
	KeyToken             Key = "token"
	KeyUser              Key = "user"
	KeyAdminUserViewMode Key = "adminUserViewMode"
	KeyDeviceConfig      Key = "deviceConfig"
)

// AllKeys returns every key a session may hold.
func AllKeys() []Key {
	return []Key{KeyToken, KeyUser, KeyAdminUserViewMode, KeyDeviceConfig}
}

// Values is the raw string content of a session.
type Values map[Key]string

// Change is published whenever a session key is written or removed.
type Change struct {
	Key     Key  `json:"key"`
	Removed bool `json:"removed"`
}
