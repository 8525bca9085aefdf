// Package catalog resolves logical table names to physical storage
// descriptors.
//
// Resolution is a pure function of the table name and the configured data
// root: no filesystem access happens here, and whether the resolved file
// exists is the executor's concern. Because resolution is deterministic,
// descriptors are memoized in a small LRU cache.
package catalog
