package catalog

import (
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/minipg/minipg/plan"
)

// descriptorCacheSize bounds the memoized descriptor count. Descriptors
// are tiny; the bound only guards against unbounded distinct table names.
const descriptorCacheSize = 256

// DefaultExtension is the storage extension used when Config leaves it empty.
const DefaultExtension = ".jsonl"

// Config locates the table store.
type Config struct {
	// DataDir is the directory holding one record file per logical table.
	DataDir string

	// Extension is the table file extension, e.g. ".jsonl". It also
	// determines the descriptor's format. Empty means DefaultExtension.
	Extension string
}

// Resolver maps logical table names to TableDescriptors. It implements
// plan.Resolver and is safe for concurrent use.
type Resolver struct {
	cfg   Config
	cache *lru.Cache[string, plan.TableDescriptor]
}

// NewResolver builds a resolver for the given store configuration.
func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	cache, err := lru.New[string, plan.TableDescriptor](descriptorCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create descriptor cache: %w", err)
	}
	return &Resolver{cfg: cfg, cache: cache}, nil
}

// Resolve maps a logical table name to its physical descriptor.
//
// The name must satisfy the identifier grammar (letters, digits,
// underscore); anything else, including any path traversal attempt, fails
// with plan.ErrInvalidTableName before a path is ever derived. Resolving
// the same name twice yields identical descriptors with no observable I/O.
func (r *Resolver) Resolve(name string) (plan.TableDescriptor, error) {
	if !plan.ValidIdentifier(name) {
		return plan.TableDescriptor{}, fmt.Errorf("%w: %q", plan.ErrInvalidTableName, name)
	}

	if desc, ok := r.cache.Get(name); ok {
		return desc, nil
	}

	desc := plan.TableDescriptor{
		LogicalName: name,
		StoragePath: filepath.Join(r.cfg.DataDir, name+r.cfg.Extension),
		Format:      formatFor(r.cfg.Extension),
	}
	r.cache.Add(name, desc)
	return desc, nil
}

// formatFor maps a storage extension to its record format. Unknown
// extensions fall back to the store's native record-per-line encoding.
func formatFor(ext string) plan.Format {
	switch ext {
	case ".csv":
		return plan.FormatCSV
	case ".parquet":
		return plan.FormatParquet
	default:
		return plan.FormatJSONL
	}
}
