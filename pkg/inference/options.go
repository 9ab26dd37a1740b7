package inference

import (
	"github.com/probgen/heredity/pkg/cpt"
	"github.com/probgen/heredity/pkg/logging"
	"github.com/probgen/heredity/pkg/metrics"
)

// Options configures an inference run.
type Options struct {
	// Tables are the conditional probability tables driving the network.
	Tables cpt.Tables

	// Workers is the number of enumeration shards run concurrently.
	// At most one worker means a fully serial run.
	Workers int

	// Logger receives run progress. Nil means no logging.
	Logger logging.Logger

	// Metrics receives run instrumentation. Nil means no instrumentation.
	Metrics *metrics.Registry
}

// DefaultOptions returns a serial run over the default tables.
func DefaultOptions() Options {
	return Options{
		Tables:  cpt.Default(),
		Workers: 1,
		Logger:  logging.NewNopLogger(),
	}
}
