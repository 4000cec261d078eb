package bibgo

// Close marks the catalog closed. Every subsequent operation returns
// ErrCatalogClosed. Close is idempotent and safe to call concurrently with
// in-flight operations, which run to completion.
//
// The catalog holds no goroutines or file handles, so Close never fails;
// the error return keeps the call site stable if that changes.
func (c *Catalog) Close() error {
	if c == nil {
		return nil
	}

	c.closed.Store(true)

	return nil
}
