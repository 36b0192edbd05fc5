// Package store provides the durable key-value persistence layer. Each key
// holds one JSON-serialized sequence of records, replaced wholesale on every
// Set; there are no partial updates and no transactions.
package store

// Persisted keys. The schema is fixed: no versioning field, no other keys.
const (
	UsersKey = "users"
	CartKey  = "cart"
)

// KVStore is the contract every backend implements.
//
// Get unmarshals the stored value for key into dest and reports whether the
// key was present. Backends degrade read failures (I/O, corrupt JSON) to
// "absent": the failure is logged and Get returns (false, nil), so callers
// must tolerate a key silently reading as absent even after a successful Set.
// Set replaces the whole value for key and returns any write failure.
type KVStore interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
}

// Bootstrap initializes the users and cart keys to empty sequences when they
// are absent. It is idempotent and safe to run on every startup.
func Bootstrap(kv KVStore) error {
	for _, key := range []string{UsersKey, CartKey} {
		var seq []any
		found, err := kv.Get(key, &seq)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if err := kv.Set(key, []any{}); err != nil {
			return err
		}
	}
	return nil
}
