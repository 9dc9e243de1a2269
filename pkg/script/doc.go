// Package script is the reference geometry generator: a sandboxed Lisp
// dialect whose builtins drive the mesh adapter's Create/Transform/
// ApplyStyles/Compute operations in a deterministic order. It stands in
// for an external domain-model loader, letting a small interpreted
// program build and combine meshes instead of hard-coded Go.
package script
