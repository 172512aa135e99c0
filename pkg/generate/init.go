package generate

import "github.com/dshills/rogueforge/pkg/geom"

// InitState is the first pass of every generator: allocate an all-wall grid
// of the configured dimensions.
func InitState(cfg Config) *State {
	return &State{
		Config: cfg,
		Grid:   geom.NewGrid(cfg.Width, cfg.Height),
	}
}
