package csg

// UnionInplace rewrites a in place to hold the union of a and b, leaving b
// untouched. The two empty-operand shortcuts avoid building any tree at
// all when one side contributes nothing.
func UnionInplace(a, b *Node) {
	if a.IsEmpty() {
		*a = *b.Clone()
		return
	}
	if b.IsEmpty() {
		return
	}

	bClone := b.Clone()
	a.ClipTo(bClone)
	bClone.ClipTo(a)
	bClone.Invert()
	bClone.ClipTo(a)
	bClone.Invert()
	a.Build(bClone.AllPolygons())
}

// Union returns the union of a and b as a new tree; neither operand is
// modified.
func Union(a, b *Node) *Node {
	result := a.Clone()
	UnionInplace(result, b)
	return result
}

// DifferenceInplace rewrites a in place to hold a minus b. The two outer
// Invert calls turn subtraction into a union carried out in inverted
// space: A-B = ¬(¬A ∪ B).
func DifferenceInplace(a, b *Node) {
	if a.IsEmpty() || b.IsEmpty() {
		return
	}

	bClone := b.Clone()
	a.Invert()
	a.ClipTo(bClone)
	bClone.ClipTo(a)
	bClone.Invert()
	bClone.ClipTo(a)
	bClone.Invert()
	a.Build(bClone.AllPolygons())
	a.Invert()
}

// Difference returns a minus b as a new tree; neither operand is modified.
func Difference(a, b *Node) *Node {
	result := a.Clone()
	DifferenceInplace(result, b)
	return result
}

// IntersectionInplace rewrites a in place to hold the intersection of a
// and b, exploiting De Morgan's law: A∩B = ¬(¬A ∪ ¬B).
func IntersectionInplace(a, b *Node) {
	if a.IsEmpty() || b.IsEmpty() {
		a.Clear()
		return
	}

	bClone := b.Clone()
	a.Invert()
	bClone.ClipTo(a)
	bClone.Invert()
	a.ClipTo(bClone)
	bClone.ClipTo(a)
	a.Build(bClone.AllPolygons())
	a.Invert()
}

// Intersection returns the intersection of a and b as a new tree; neither
// operand is modified.
func Intersection(a, b *Node) *Node {
	result := a.Clone()
	IntersectionInplace(result, b)
	return result
}

// UnionPolygons computes the union of two polygon sets.
func UnionPolygons(a, b []Polygon) []Polygon {
	return doOperation(a, b, Union)
}

// IntersectionPolygons computes the intersection of two polygon sets.
func IntersectionPolygons(a, b []Polygon) []Polygon {
	return doOperation(a, b, Intersection)
}

// DifferencePolygons computes a minus b for two polygon sets.
func DifferencePolygons(a, b []Polygon) []Polygon {
	return doOperation(a, b, Difference)
}

func doOperation(a, b []Polygon, op func(a, b *Node) *Node) []Polygon {
	treeA := NewNode(a)
	treeB := NewNode(b)
	return op(treeA, treeB).AllPolygons()
}
