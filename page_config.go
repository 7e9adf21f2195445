package paging

// PageConfig holds pagination configuration options.
// Use NewPageConfig() to create a config with sensible defaults,
// then customize using the With* methods.
//
// Example:
//
//	config := paging.NewPageConfig().WithMaxSize(50).WithTotalCount(true)
//	limit := config.EffectiveLimit(args)
type PageConfig struct {
	// DefaultSize is the page size used when neither First nor Last is set.
	DefaultSize int

	// MaxSize is the maximum allowed page size. Requests exceeding this
	// will be capped to MaxSize (not rejected).
	MaxSize int

	// IncludeTotalCount makes paginators run a count query over the base
	// conditions and attach it to the connection.
	IncludeTotalCount bool
}

// NewPageConfig creates a PageConfig with sensible defaults:
// - DefaultSize: 20
// - MaxSize: 100
// - IncludeTotalCount: false
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *PageConfig) WithDefaultSize(size int) *PageConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithMaxSize sets the maximum page size and returns the config for chaining.
func (c *PageConfig) WithMaxSize(size int) *PageConfig {
	if size > 0 {
		c.MaxSize = size
	}
	return c
}

// WithTotalCount toggles the total count query and returns the config for chaining.
func (c *PageConfig) WithTotalCount(include bool) *PageConfig {
	c.IncludeTotalCount = include
	return c
}

// EffectiveLimit returns the page size to use: First, else Last, else
// DefaultSize, capped at MaxSize.
func (c *PageConfig) EffectiveLimit(args *PageArgs) int {
	if c == nil {
		c = NewPageConfig()
	}

	defaultSize := c.DefaultSize
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	requested := defaultSize
	switch {
	case args.GetFirst() != nil && *args.GetFirst() > 0:
		requested = *args.GetFirst()
	case args.GetLast() != nil && *args.GetLast() > 0:
		requested = *args.GetLast()
	}

	return min(requested, maxSize)
}

// PaginateOption configures a PageConfig when constructing a paginator.
//
// Example:
//
//	p := cursor.New(fetcher, key,
//	    paging.WithMaxSize(100),
//	    paging.WithDefaultSize(25),
//	)
type PaginateOption func(*PageConfig)

// WithMaxSize sets the maximum page size.
// If the requested size exceeds this, it will be capped to size.
func WithMaxSize(size int) PaginateOption {
	return func(c *PageConfig) {
		c.WithMaxSize(size)
	}
}

// WithDefaultSize sets the default page size.
// Used when neither First nor Last is set.
func WithDefaultSize(size int) PaginateOption {
	return func(c *PageConfig) {
		c.WithDefaultSize(size)
	}
}

// WithTotalCount enables or disables the total count query.
func WithTotalCount(include bool) PaginateOption {
	return func(c *PageConfig) {
		c.WithTotalCount(include)
	}
}

// WithConfig replaces the whole configuration with a copy of cfg.
// Options applied after it still take effect.
func WithConfig(cfg *PageConfig) PaginateOption {
	return func(c *PageConfig) {
		if cfg != nil {
			*c = *cfg
		}
	}
}

// ApplyPaginateOptions applies functional options over the defaults and
// returns the resulting PageConfig.
func ApplyPaginateOptions(opts ...PaginateOption) *PageConfig {
	cfg := NewPageConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
