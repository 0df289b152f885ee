// Package maxsizedfx provides an fx module for a string-keyed bounded map.
package maxsizedfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/maxsized"
	"github.com/discochess/maxsized/internal/stats"
	"github.com/discochess/maxsized/internal/stats/logger"
)

// Config holds configuration for the map.
type Config struct {
	// MaxSize is the maximum number of entries. Default is 1024.
	MaxSize int

	// Policy is the recency policy name, as accepted by maxsized.ParsePolicy.
	// Default is "access".
	Policy string
}

// Module provides a *maxsized.Map[string, string].
// Requires a Config and a *zap.Logger to be provided.
// A maxsized.Collector may be supplied to override the zap-logging one.
var Module = fx.Module("maxsized",
	fx.Provide(
		fx.Annotate(newStatsCollector, fx.ResultTags(`name:"maxsized.default"`)),
		newMap,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("maxsized.stats"))
}

// Params holds dependencies for creating the map.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Default   stats.Collector `name:"maxsized.default"`
	Collector stats.Collector `optional:"true"`
}

// Result holds the provided map.
type Result struct {
	fx.Out

	Map *maxsized.Map[string, string]
}

func newMap(p Params) (Result, error) {
	maxSize := p.Config.MaxSize
	if maxSize == 0 {
		maxSize = 1024
	}

	policy := maxsized.AccessTouches
	if p.Config.Policy != "" {
		var err error
		if policy, err = maxsized.ParsePolicy(p.Config.Policy); err != nil {
			return Result{}, err
		}
	}

	collector := p.Collector
	if collector == nil {
		collector = p.Default
	}

	m, err := maxsized.New[string, string](maxSize,
		maxsized.WithPolicy(policy),
		maxsized.WithStats(collector),
		maxsized.WithLogger(p.Logger.Named("maxsized")),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Map: m}, nil
}
