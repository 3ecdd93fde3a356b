package ports

// FailureHook is invoked when a KeyValueStore operation degrades instead of
// failing: op is the operation name ("get", "set", ...), key the affected
// key. Lets tests and monitoring observe silent storage degradation.
type FailureHook func(op, key string, err error)

// KeyValueStore is a namespaced JSON key-value store in the mould of
// browser local storage. Implementations never surface errors: a failed
// read behaves as an absent key, a failed write is a logged no-op, so the
// application keeps working (merely non-persistent) when the backing
// medium is unavailable or full.
//
// There is no transaction across keys. Callers needing a multi-key update
// sequence the calls and accept a window of partial failure.
type KeyValueStore interface {
	// Get unmarshals the value stored under key into out and reports
	// whether a value was found and decoded.
	Get(key string, out any) bool
	Set(key string, value any)
	Remove(key string)
	Clear()
	// Keys returns the stored keys that begin with prefix.
	Keys(prefix string) []string
}
