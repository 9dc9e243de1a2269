package script

import "github.com/chazu/csgkit/pkg/adapter"

// Scene accumulates the entities a program declares via (entity ...), in
// declaration order.
type Scene struct {
	Entities []adapter.Entity
}

func newScene() *Scene {
	return &Scene{}
}
