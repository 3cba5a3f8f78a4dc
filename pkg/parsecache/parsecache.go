// Package parsecache keeps recently parsed documents so that repeated sources are parsed once.
//
// Documents handed out by a Cache are shared between callers and must not be modified.
package parsecache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jensneuse/abstractlogger"

	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/astparser"
)

type Option func(c *Cache)

// WithLogger sets the logger, the default discards everything.
func WithLogger(logger abstractlogger.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithParserOptions configures the pooled parsers, e.g. with astparser.WithLimits.
func WithParserOptions(options ...astparser.Option) Option {
	return func(c *Cache) {
		c.parserOptions = append(c.parserOptions, options...)
	}
}

// Cache is an LRU cache of parsed documents keyed by the hash of their source.
// It is safe for concurrent use.
type Cache struct {
	documents     *lru.Cache
	parsers       sync.Pool
	parserOptions []astparser.Option
	logger        abstractlogger.Logger
}

type entry struct {
	source   string
	document *ast.Document
}

// New returns a Cache holding at most size documents.
func New(size int, options ...Option) (*Cache, error) {
	documents, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		documents: documents,
		logger:    abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(c)
	}

	c.parsers.New = func() interface{} {
		return astparser.NewParser(c.parserOptions...)
	}

	return c, nil
}

// Parse returns the cached document for source or parses it.
// Failed parses are not cached, the same source is parsed again on the next call.
func (c *Cache) Parse(source string) (*ast.Document, error) {

	key := xxhash.Sum64String(source)

	if cached, ok := c.documents.Get(key); ok {
		if e, ok := cached.(entry); ok && e.source == source {
			c.logger.Debug("parsecache.Cache.Parse",
				abstractlogger.String("message", "cache hit"),
				abstractlogger.Any("key", key),
			)
			return e.document, nil
		}
		c.logger.Debug("parsecache.Cache.Parse",
			abstractlogger.String("message", "hash collision"),
			abstractlogger.Any("key", key),
		)
	}

	parser := c.parsers.Get().(*astparser.Parser)
	document, err := parser.Parse(source)
	c.parsers.Put(parser)

	if err != nil {
		c.logger.Debug("parsecache.Cache.Parse",
			abstractlogger.String("message", "parse failed"),
			abstractlogger.Error(err),
		)
		return nil, err
	}

	c.documents.Add(key, entry{source: source, document: document})

	return document, nil
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	return c.documents.Len()
}

// Purge drops every cached document.
func (c *Cache) Purge() {
	c.documents.Purge()
}
