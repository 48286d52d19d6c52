package interfaces

// TokenStore is durable key/value storage for values that outlive a session,
// such as the access token.
type TokenStore interface {
	SaveItem(key, value string) error
	RemoveItem(key string) error
	LoadItem(key string) (string, bool, error)
}
