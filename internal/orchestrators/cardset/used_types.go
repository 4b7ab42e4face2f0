package cardset

import (
	"sync"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// usedTypes is the request scoped set of item types already claimed by a
// finished item. Check and claim happen under one lock.
type usedTypes struct {
	mu    sync.Mutex
	types map[cards.ItemType]struct{}
}

func newUsedTypes() *usedTypes {
	return &usedTypes{types: make(map[cards.ItemType]struct{})}
}

// claim records t and reports whether it was unused
func (u *usedTypes) claim(t cards.ItemType) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, taken := u.types[t]; taken {
		return false
	}
	u.types[t] = struct{}{}
	return true
}

// claimFirstUnused claims the first candidate nobody holds yet
func (u *usedTypes) claimFirstUnused(candidates []cards.ItemType) (cards.ItemType, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, t := range candidates {
		if _, taken := u.types[t]; !taken {
			u.types[t] = struct{}{}
			return t, true
		}
	}
	return "", false
}
