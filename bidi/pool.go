package bidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Resolvers are short-lived objects, one per call to Resolve. To avoid
// allocating them over and over we will pool them.
type resolverPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalResolverPool *resolverPool

func init() {
	globalResolverPool = &resolverPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &resolver{}, nil
		})
	globalResolverPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalResolverPool.opool = pool.NewObjectPool(globalResolverPool.ctx, factory, config)
}

// borrowResolver returns a pooled resolver for a run.
func borrowResolver(run *Run) *resolver {
	o, err := globalResolverPool.opool.BorrowObject(globalResolverPool.ctx)
	if err != nil {
		T().Errorf("bidi: cannot borrow resolver from pool: %v", err)
		rs := &resolver{run: run}
		rs.prepare()
		return rs
	}
	rs := o.(*resolver)
	rs.run = run
	rs.prepare()
	return rs
}

// prepare records the initial classes of the run and matches isolate
// initiators with their PDIs (BD9). It has to be called before any of the
// resolution passes.
func (rs *resolver) prepare() {
	n := rs.run.Len()
	rs.initial = rs.initial[:0]
	rs.matching = rs.matching[:0]
	rs.runAt = rs.runAt[:0]
	for i := 0; i < n; i++ {
		rs.initial = append(rs.initial, rs.run.slots[i].Class.Base())
		rs.matching = append(rs.matching, none)
		rs.runAt = append(rs.runAt, none)
	}
	open := rs.open[:0]
	for i, c := range rs.initial {
		switch c {
		case LRI, RLI, FSI:
			open = append(open, i)
		case PDI:
			if len(open) > 0 {
				j := open[len(open)-1]
				open = open[:len(open)-1]
				rs.matching[i], rs.matching[j] = j, i
			}
		case B:
			open = open[:0]
		}
	}
	rs.open = open[:0]
	rs.runs = rs.runs[:0]
}

// Clears the resolver and puts it back into the pool.
func (rs *resolver) releaseIntoPool() {
	rs.run = nil
	rs.isolates = 0
	rs.isolateOverflow = 0
	rs.embeddingOverflow = 0
	rs.runs = rs.runs[:0]
	_ = globalResolverPool.opool.ReturnObject(globalResolverPool.ctx, rs)
}
