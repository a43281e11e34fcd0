package cache

import (
	"strconv"
	"time"

	"github.com/karlseguin/ccache"
	"github.com/npillmayer/decancer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "decancer_cache_hits_total",
		Help: "Cures answered from the cache",
	})

	metricsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "decancer_cache_misses_total",
		Help: "Cures not found in the cache",
	})
)

// Configuration configures a Curer. Use Configure to get the defaults.
type Configuration struct {
	size int64
	ttl  time.Duration
}

// Configure returns the default configuration: 5000 entries kept for an
// hour.
func Configure() *Configuration {
	return &Configuration{
		size: 5000,
		ttl:  time.Hour,
	}
}

// Size sets the maximum number of cached cures.
func (c *Configuration) Size(size int64) *Configuration {
	if size > 0 {
		c.size = size
	}
	return c
}

// TTL sets the time a cure stays in the cache.
func (c *Configuration) TTL(ttl time.Duration) *Configuration {
	if ttl > 0 {
		c.ttl = ttl
	}
	return c
}

// Curer cures texts and remembers the results. It is safe for concurrent
// use.
type Curer struct {
	cache *ccache.Cache
	ttl   time.Duration
}

// New creates a Curer. A nil configuration selects the defaults.
func New(config *Configuration) *Curer {
	if config == nil {
		config = Configure()
	}
	prune := uint32(config.size / 20)
	if prune == 0 {
		prune = 1
	}
	return &Curer{
		cache: ccache.New(ccache.Configure().MaxSize(config.size).ItemsToPrune(prune)),
		ttl:   config.ttl,
	}
}

// Cure cures text with opts, answering from the cache if possible.
func (c *Curer) Cure(text string, opts decancer.Options) (decancer.CuredString, error) {
	cached := true
	item, err := c.cache.Fetch(key(text, opts), c.ttl, func() (interface{}, error) {
		cached = false
		return decancer.Cure(text, opts)
	})
	if err != nil {
		return decancer.CuredString{}, err
	}
	if cached {
		metricsCacheHits.Inc()
	} else {
		metricsCacheMisses.Inc()
		T().Debugf("decancer cache miss for %d bytes with %v", len(text), opts)
	}
	return item.Value().(decancer.CuredString), nil
}

// Forget removes the cure of text with opts from the cache.
func (c *Curer) Forget(text string, opts decancer.Options) bool {
	return c.cache.Delete(key(text, opts))
}

// Clear empties the cache.
func (c *Curer) Clear() {
	c.cache.Clear()
}

// Stop stops the cache's background worker. The Curer must not be used
// afterwards.
func (c *Curer) Stop() {
	c.cache.Stop()
}

func key(text string, opts decancer.Options) string {
	return strconv.FormatUint(uint64(opts), 16) + ":" + text
}
