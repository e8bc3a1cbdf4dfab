package tablesel

import (
	"maps"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// SessionOptions holds the configuration of a Session.
type SessionOptions struct {
	readOnly bool

	// Autofocus
	autofocus      bool
	autofocusDelay time.Duration

	// Matrix cache size, 0 disables the cache
	cacheSize int

	// Default attributes of created elements, by tag
	createAttributes map[string][]html.Attribute

	logger     logrus.FieldLogger
	registerer prometheus.Registerer
}

// defaultOptions returns the default session options.
func defaultOptions() SessionOptions {
	return SessionOptions{
		readOnly:  false,
		autofocus: false,
		cacheSize: 0,
		logger:    nil, // nil means logrus.StandardLogger()
	}
}

// clone creates a deep copy of SessionOptions.
func (o SessionOptions) clone() SessionOptions {
	newOpts := o
	if o.createAttributes != nil {
		newOpts.createAttributes = make(map[string][]html.Attribute, len(o.createAttributes))
		for tag, attrs := range o.createAttributes {
			newOpts.createAttributes[tag] = slices.Clone(attrs)
		}
	}
	return newOpts
}

// tags returns the tags with default attributes in a stable order.
func (o SessionOptions) tags() []string {
	return slices.Sorted(maps.Keys(o.createAttributes))
}
