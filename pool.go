package decancer

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/decancer/bidi"
)

// Bidi resolvers carry scratch buffers of the size of the longest text they
// have seen. To avoid re-allocating them for every call to Cure we will pool
// them. A borrowed resolver belongs to a single call until it is returned.
type resolverPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalResolverPool *resolverPool

func init() {
	globalResolverPool = &resolverPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return bidi.NewResolver(), nil
		})
	globalResolverPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalResolverPool.opool = pool.NewObjectPool(globalResolverPool.ctx, factory, config)
}

// borrowResolver returns a pooled resolver, or a fresh one if the pool
// fails us.
func borrowResolver() *bidi.Resolver {
	o, err := globalResolverPool.opool.BorrowObject(globalResolverPool.ctx)
	if err != nil {
		CT().Errorf("decancer: cannot borrow bidi resolver: %v", err)
		return bidi.NewResolver()
	}
	return o.(*bidi.Resolver)
}

// releaseResolver puts a resolver back into the pool.
func releaseResolver(r *bidi.Resolver) {
	if err := globalResolverPool.opool.ReturnObject(globalResolverPool.ctx, r); err != nil {
		CT().Debugf("decancer: bidi resolver not returned to pool: %v", err)
	}
}
