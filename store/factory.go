package store

import (
	"fmt"
	"time"

	"stockboard/domain"
)

// NewStore constructs a domain.ProductStore by seed kind: "demo" starts
// from the built-in products, "empty" from nothing, and "file" from the
// JSON fixture at path.
func NewStore(kind, path string, opts ...Option) (domain.ProductStore, error) {
	switch kind {
	case "demo", "":
		return NewInMemoryStore(opts...), nil
	case "empty":
		return NewInMemoryStore(append(opts, WithSeed(nil))...), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("seed file path required for file seed")
		}
		seed, err := LoadSeed(path, time.Now())
		if err != nil {
			return nil, err
		}
		return NewInMemoryStore(append(opts, WithSeed(seed))...), nil
	default:
		return nil, fmt.Errorf("unknown seed kind: %s", kind)
	}
}
