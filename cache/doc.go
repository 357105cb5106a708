// Package cache implements the cache-aside read path used by the paged
// listings.
//
// # Overview
//
//   - CacheService: opaque payloads keyed by string with a TTL. Backends live
//     in internal/cacheinfra (sturdyc in-process, Redis distributed).
//   - KeySerializer: builds stable keys from an operation name and arguments.
//   - Codec: JSON (default) or msgpack encoding of cached values.
//   - GetOrFetch: the generic cache-aside helper.
//
// # Basic Usage
//
//	aside := cache.NewAside(svc)
//	keys := cache.NewNamespacedKeySerializer("posts")
//	key := keys.SerializeKey("GetPaged", page, size)
//	page, err := cache.GetOrFetch(ctx, aside, key, func(ctx context.Context) (model.PagedResult[dto.PostDto], error) {
//		return loadPage(ctx, page, size)
//	})
//
// # Key Format
//
// Keys are "namespace::operation::arg::arg" with the operation snake-cased,
// for example "posts::get_paged_by_category::1::10::<category id>". Filter ids
// are always part of the key so that differently filtered pages never collide.
//
// # Consistency
//
// Entries expire after the configured TTL (four minutes by default). Writes do
// not evict anything, so a paged listing may be stale for up to one TTL after
// a create, update or delete. Concurrent misses on one key each run the fetch
// and each store their value; the last write wins.
package cache
