package script

import (
	"fmt"
	"strings"

	"github.com/chazu/csgkit/pkg/adapter"
	"github.com/chazu/csgkit/pkg/csg"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpVec3 wraps a csg.Vector so it can be passed between builtins.
type sexpVec3 struct{ v csg.Vector }

func (s *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.3f %.3f %.3f)", s.v.X, s.v.Y, s.v.Z)
}
func (s *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpMesh wraps an adapter.Mesh so it can flow through union/difference/
// intersection/style/entity.
type sexpMesh struct{ m adapter.Mesh }

func (s *sexpMesh) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(mesh %d-polygons)", len(s.m.Polygons))
}
func (s *sexpMesh) Type() *zygo.RegisteredType { return nil }

// sexpColor wraps an adapter.Color.
type sexpColor struct{ c adapter.Color }

func (s *sexpColor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(color %.2f %.2f %.2f %.2f)", s.c.R, s.c.G, s.c.B, s.c.A)
}
func (s *sexpColor) Type() *zygo.RegisteredType { return nil }

// isKW reports whether s is a preprocessed keyword string, returning its
// name without the marker prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments, keywords
// identified by the marker preprocessSource added.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if name, ok := isKW(args[i]); ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
			continue
		}
		result.positional = append(result.positional, args[i])
		i++
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T", s)
}

func toVec3(s zygo.Sexp) (csg.Vector, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.v, nil
	}
	return csg.Vector{}, fmt.Errorf("expected vec3, got %T", s)
}

func toMesh(s zygo.Sexp) (adapter.Mesh, error) {
	if m, ok := s.(*sexpMesh); ok {
		return m.m, nil
	}
	return adapter.Mesh{}, fmt.Errorf("expected mesh, got %T", s)
}

func toColor(s zygo.Sexp) (adapter.Color, error) {
	if c, ok := s.(*sexpColor); ok {
		return c.c, nil
	}
	return adapter.Color{}, fmt.Errorf("expected color, got %T", s)
}

// boxPolygons builds the 6 outward-facing faces of an axis-aligned box
// with corner min and edge lengths size.
func boxPolygons(min, size csg.Vector) []csg.Polygon {
	p := func(fx, fy, fz float64) csg.Vector {
		return csg.NewVector(min.X+fx*size.X, min.Y+fy*size.Y, min.Z+fz*size.Z)
	}
	faces := [6][4]csg.Vector{
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // -X
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)}, // +X
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // -Y
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)}, // +Y
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)}, // -Z
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // +Z
	}
	polygons := make([]csg.Polygon, 6)
	for i := range faces {
		polygons[i] = csg.NewPolygon(faces[i][:])
	}
	return polygons
}

// registerBuiltins installs the CSG geometry-generator builtins into a
// zygomys environment. Builtins build and combine Mesh values; (entity
// ...) is the only builtin with a side effect, appending to scene.
func registerBuiltins(env *zygo.Zlisp, scene *Scene) {

	// (vec3 x y z)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{v: csg.NewVector(x, y, z)}, nil
	})

	// (color r g b) or (color r g b a)
	env.AddFunction("color", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 && len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("color requires 3 or 4 arguments, got %d", len(args))
		}
		vals := make([]float64, 4)
		vals[3] = 1
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("color: component %d: %w", i, err)
			}
			vals[i] = f
		}
		return &sexpColor{c: adapter.Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}}, nil
	})

	// (box :size (vec3 w h d) :at (vec3 x y z))
	// :at is the box's minimum corner; defaults to the origin.
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		sizeArg, ok := pa.kw["size"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("box requires :size")
		}
		size, err := toVec3(sizeArg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: size: %w", err)
		}
		min := csg.Vector{}
		if atArg, ok := pa.kw["at"]; ok {
			min, err = toVec3(atArg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: at: %w", err)
			}
		}
		return &sexpMesh{m: adapter.CreateMesh(boxPolygons(min, size))}, nil
	})

	// (translate mesh (vec3 dx dy dz))
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires mesh and offset arguments, got %d", len(args))
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		offset, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
		}
		meshes := []adapter.Mesh{m.Clone()}
		adapter.TransformMeshes(meshes, adapter.Translation(offset))
		return &sexpMesh{m: meshes[0]}, nil
	})

	registerBooleanBuiltin(env, "union", adapter.ComputeUnion)
	registerBooleanBuiltin(env, "difference", adapter.ComputeDifference)
	registerBooleanBuiltin(env, "intersection", adapter.ComputeIntersection)

	// (style mesh (color r g b a))
	env.AddFunction("style", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("style requires mesh and color arguments, got %d", len(args))
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("style: %w", err)
		}
		c, err := toColor(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("style: color: %w", err)
		}
		meshes := []adapter.Mesh{m.Clone()}
		adapter.ApplyStylesToMeshes(meshes, []adapter.Style{{Tag: adapter.SurfaceBoth, Color: c}})
		return &sexpMesh{m: meshes[0]}, nil
	})

	// (entity "name" mesh...)
	env.AddFunction("entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("entity requires a name argument")
		}
		entityName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("entity: name: %w", err)
		}
		meshes := make([]adapter.Mesh, 0, len(args)-1)
		for i, a := range args[1:] {
			m, err := toMesh(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("entity: mesh %d: %w", i, err)
			}
			meshes = append(meshes, m)
		}
		scene.Entities = append(scene.Entities, adapter.CreateEntity(entityName, meshes, nil))
		return zygo.SexpNull, nil
	})
}

// registerBooleanBuiltin wires a two-mesh Boolean builtin (union,
// difference, intersection) onto the corresponding batched adapter
// compute function, applied to single-mesh operand lists.
func registerBooleanBuiltin(env *zygo.Zlisp, name string, compute func(a, b []adapter.Mesh) []adapter.Mesh) {
	env.AddFunction(name, func(env *zygo.Zlisp, fname string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 mesh arguments, got %d", name, len(args))
		}
		a, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: first operand: %w", name, err)
		}
		b, err := toMesh(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: second operand: %w", name, err)
		}
		result := compute([]adapter.Mesh{a}, []adapter.Mesh{b})
		if len(result) == 0 {
			return &sexpMesh{m: adapter.Mesh{}}, nil
		}
		return &sexpMesh{m: result[0]}, nil
	})
}
