// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache stores encoded solver outcomes keyed by their input.

Two implementations satisfy Cache:

  - Memory: bounded, per-process, oldest-first eviction
  - Redis: shared between instances via go-redis, keys prefixed with KeyPrefix

Both apply a TTL. Lookups never return errors: an unreachable Redis is
logged and reported as a miss, so the API keeps answering from the solver.

	c := cache.NewMemory(cache.DefaultCapacity, 10*time.Minute)
	if body, ok := c.Get(ctx, key); ok {
		// serve cached JSON
	}
*/
package cache
