// Package cache provides LRU caching for archive objects.
//
// The LRUCache stores recently opened blobs by name so repeated archive
// reads skip the backing store. It integrates with the resource.Controller
// for global memory accounting: when no memory headroom is left, new
// entries are simply not admitted.
package cache
