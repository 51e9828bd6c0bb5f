// Package storage provides the durable record store backing the cart and
// auth stores. It is a small key-value layer: each logical record ("cart",
// "user") is one whole JSON snapshot, overwritten on every write. There is
// exactly one writer per database file, so no cross-process coordination is
// attempted.
package storage

import "errors"

// Record keys used by the stores.
const (
	KeyCart = "cart"
	KeyUser = "user"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("storage: record not found")

type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
