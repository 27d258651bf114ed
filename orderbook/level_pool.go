package orderbook

import (
	"sync"

	"github.com/cryptonstudio/orderbook-core/container/queue"
)

//go:generate mockgen -source=level_pool.go -destination=mocks/level_pool.go -package=mocks

// LevelPool allocates and recycles Level instances so a book under steady
// churn does not pressure the garbage collector. Create returns a level
// ready for use; Release returns one no longer referenced by any ladder or
// order back-pointer to the pool for reuse.
type LevelPool interface {
	Create(levelType LevelType, price Price) *Level
	Release(level *Level)
}

// arenaLevelPool is the default LevelPool, backed by a sync.Pool.
type arenaLevelPool struct {
	pool sync.Pool
}

// newArenaLevelPool returns a LevelPool ready for use, pre-warmed with
// defaultReservedLevelSlots levels so the first burst of activity on a new
// book doesn't pay for allocation.
func newArenaLevelPool() *arenaLevelPool {
	p := &arenaLevelPool{}
	p.pool.New = func() any {
		return &Level{}
	}
	for i := 0; i < defaultReservedLevelSlots; i++ {
		p.pool.Put(&Level{orderList: queue.New[*Order]()})
	}
	return p
}

// Create allocates (or recycles) a Level and initializes it in place.
func (p *arenaLevelPool) Create(levelType LevelType, price Price) *Level {
	l := p.pool.Get().(*Level)
	l.levelType = levelType
	l.price = price
	if l.orderList == nil {
		l.orderList = queue.New[*Order]()
	}
	return l
}

// Release clears a level and returns it to the pool. The caller must have
// already unlinked every order from the level and removed it from its
// ladder; Release does not check either precondition.
func (p *arenaLevelPool) Release(level *Level) {
	level.reset()
	p.pool.Put(level)
}
