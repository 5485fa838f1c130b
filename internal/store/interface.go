package store

// KVStore is the persistence primitive behind the ledger: an opaque
// key/value blob store. Get returns ErrRecordNotFound for absent keys.
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
