// Command csgscript evaluates a geometry-generator program and reports
// the resulting scene: one line per entity, its mesh and polyline counts,
// and total polygon/vertex counts.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chazu/csgkit/pkg/script"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <script-file>", os.Args[0])
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading script: %v", err)
	}

	eng := script.NewEngine()
	scene, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	for _, entity := range scene.Entities {
		polygons, vertices := 0, 0
		for _, m := range entity.Meshes {
			polygons += len(m.Polygons)
			for _, p := range m.Polygons {
				vertices += len(p.Vertices)
			}
		}
		fmt.Printf("%v: %d mesh(es), %d polyline(s), %d polygons, %d vertices\n",
			entity.Domain, len(entity.Meshes), len(entity.Polylines), polygons, vertices)
	}
}
