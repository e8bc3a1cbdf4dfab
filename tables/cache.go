package tables

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/html"
)

// cacheKey identifies a matrix by its table and the structural revision it
// was built at.
type cacheKey struct {
	table    *html.Node
	revision uint64
}

// Cache memoizes matrices per table and structural revision. Callers must
// bump the revision after every structural edit and must not modify the
// returned matrices.
type Cache struct {
	matrices *lru.Cache[cacheKey, *Matrix]
}

// NewCache creates a cache holding at most size matrices.
func NewCache(size int) (*Cache, error) {
	matrices, err := lru.New[cacheKey, *Matrix](size)
	if err != nil {
		return nil, err
	}
	return &Cache{matrices: matrices}, nil
}

// Matrix returns the matrix of table at revision, building it on a miss. A
// nil cache always builds.
func (c *Cache) Matrix(table *html.Node, revision uint64) *Matrix {
	if c == nil {
		return BuildMatrix(table)
	}
	key := cacheKey{table: table, revision: revision}
	if m, ok := c.matrices.Get(key); ok {
		return m
	}
	m := BuildMatrix(table)
	c.matrices.Add(key, m)
	return m
}

// Purge drops every cached matrix.
func (c *Cache) Purge() {
	if c != nil {
		c.matrices.Purge()
	}
}

// Len returns the number of cached matrices.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.matrices.Len()
}
