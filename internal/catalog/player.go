package catalog

import "github.com/phanxgames/flubber"

// Player runs every catalog entry on one target as a single parallel group.
//
// Overlapping PlayAll calls are not coalesced: each call starts its own
// independent group, and groups already in flight keep running.
type Player struct {
	catalog *Catalog
	engine  *flubber.Engine
}

// NewPlayer returns a player for c driven by engine.
func NewPlayer(c *Catalog, engine *flubber.Engine) *Player {
	return &Player{catalog: c, engine: engine}
}

// PlayAll builds one animation per entry, combines them in parallel and
// starts the group. An empty catalog is a no-op returning (nil, nil). If any
// entry fails to build nothing is started.
func (p *Player) PlayAll(target *flubber.Node) (*flubber.Group, error) {
	anims, err := p.catalog.ListForTarget(p.engine, target)
	if err != nil {
		return nil, err
	}
	if len(anims) == 0 {
		return nil, nil
	}
	g := flubber.Parallel(anims...).Named("play-all")
	g.Start()
	return g, nil
}
