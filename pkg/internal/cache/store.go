package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
)

var S *ristrettoStore.RistrettoStore

func NewStore() error {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristrettoStore.NewRistretto(cache)
	return nil
}
