package csg

// Node is one node of a BSP tree: a splitting plane, the polygons
// coplanar with that plane, and the front/back subtrees. A Node with an
// invalid Plane is an uninitialized leaf — Build gives it a plane the
// first time polygons are routed to it.
//
// Every method that walks the tree (Build, ClipTo, Invert, AllPolygons,
// Clone) does so with an explicit work queue rather than recursion: real
// operand meshes can produce trees thousands of levels deep, and a
// recursive walk would exhaust the goroutine stack. This is a correctness
// requirement, not a performance tweak.
type Node struct {
	Plane    Plane
	Polygons []Polygon
	Front    *Node
	Back     *Node
}

// NewNode builds a BSP tree from a list of polygons. A nil or empty list
// produces an empty node (invalid plane, no polygons, no children).
func NewNode(polygons []Polygon) *Node {
	n := &Node{}
	n.Build(polygons)
	return n
}

// IsEmpty reports whether the node (and by construction its subtree) holds
// no geometry: no children and no polygons of its own.
func (n *Node) IsEmpty() bool {
	return n.Front == nil && n.Back == nil && len(n.Polygons) == 0
}

// Clear resets the node to empty, discarding its subtree and polygons.
func (n *Node) Clear() {
	n.Front = nil
	n.Back = nil
	n.Polygons = nil
	n.Plane = Plane{}
}

// buildJob pairs a node awaiting a plane/split with the polygons routed to
// it; Build drains a queue of these instead of recursing per child.
type buildJob struct {
	node     *Node
	polygons []Polygon
}

// Build partitions polygons into this node's tree, extending whatever
// tree already hangs off this node. Each incoming polygon is routed by
// splitPolygon: coplanar fragments accumulate directly into the node they
// land on, non-coplanar fragments become the next node's build job.
func (n *Node) Build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}

	queue := []buildJob{{node: n, polygons: polygons}}
	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		me := job.node
		if !me.Plane.IsValid() {
			me.Plane = findOptimalSplittingPlane(job.polygons)
		}

		var listFront, listBack []Polygon
		for _, p := range job.polygons {
			// Coplanar-front and coplanar-back both land in me.Polygons:
			// they share me's plane, so there is no front/back distinction
			// to preserve for them.
			splitPolygon(me.Plane, p, &me.Polygons, &me.Polygons, &listFront, &listBack)
		}

		if len(listFront) > 0 {
			if me.Front == nil {
				me.Front = &Node{}
			}
			queue = append(queue, buildJob{node: me.Front, polygons: listFront})
		}
		if len(listBack) > 0 {
			if me.Back == nil {
				me.Back = &Node{}
			}
			queue = append(queue, buildJob{node: me.Back, polygons: listBack})
		}
	}
}

// clipJob pairs a node (read-only, from the "other" tree) with the
// polygon list being clipped against it.
type clipJob struct {
	node     *Node
	polygons []Polygon
}

// clipPolygons walks n's tree, splitting list against each node's plane.
// Fragments routed toward a nil front child are kept — they lie outside
// n's solid at that branch — while fragments routed toward a nil back
// child are dropped, since the inversion trick in the Boolean operators
// (§4.5) relies on exactly this asymmetry to make all three operators work
// from the same ClipTo primitive.
func (n *Node) clipPolygons(list []Polygon) []Polygon {
	var result []Polygon

	queue := []clipJob{{node: n, polygons: list}}
	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		me := job.node
		if !me.Plane.IsValid() {
			result = append(result, job.polygons...)
			continue
		}

		var listFront, listBack []Polygon
		for _, p := range job.polygons {
			splitPolygon(me.Plane, p, &listFront, &listBack, &listFront, &listBack)
		}

		if me.Front != nil {
			queue = append(queue, clipJob{node: me.Front, polygons: listFront})
		} else {
			result = append(result, listFront...)
		}

		if me.Back != nil {
			queue = append(queue, clipJob{node: me.Back, polygons: listBack})
		}
		// else: listBack is discarded — it is inside the solid at this branch.
	}

	return result
}

// ClipTo rewrites this tree's polygons to only the fragments lying outside
// other's solid, recursing into front and back children.
func (n *Node) ClipTo(other *Node) {
	queue := []*Node{n}
	for len(queue) > 0 {
		me := queue[0]
		queue = queue[1:]

		me.Polygons = other.clipPolygons(me.Polygons)
		if me.Front != nil {
			queue = append(queue, me.Front)
		}
		if me.Back != nil {
			queue = append(queue, me.Back)
		}
	}
}

// Invert flips every polygon and plane in the tree and swaps every node's
// front/back children, turning the solid represented by the tree into its
// complement.
func (n *Node) Invert() {
	queue := []*Node{n}
	for len(queue) > 0 {
		me := queue[0]
		queue = queue[1:]

		for i, p := range me.Polygons {
			me.Polygons[i] = p.Flip()
		}
		me.Plane = me.Plane.Flip()
		me.Front, me.Back = me.Back, me.Front

		if me.Front != nil {
			queue = append(queue, me.Front)
		}
		if me.Back != nil {
			queue = append(queue, me.Back)
		}
	}
}

// AllPolygons flattens the tree into a single polygon list.
func (n *Node) AllPolygons() []Polygon {
	var result []Polygon
	queue := []*Node{n}
	for len(queue) > 0 {
		me := queue[0]
		queue = queue[1:]

		result = append(result, me.Polygons...)
		if me.Front != nil {
			queue = append(queue, me.Front)
		}
		if me.Back != nil {
			queue = append(queue, me.Back)
		}
	}
	return result
}

// cloneJob pairs a source node with the destination node being populated
// for it, so Clone can walk both trees together without recursion.
type cloneJob struct {
	src, dst *Node
}

// Clone returns a deep, independent copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	root := &Node{}
	queue := []cloneJob{{src: n, dst: root}}
	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		job.dst.Plane = job.src.Plane
		job.dst.Polygons = clonePolygons(job.src.Polygons)

		if job.src.Front != nil {
			job.dst.Front = &Node{}
			queue = append(queue, cloneJob{src: job.src.Front, dst: job.dst.Front})
		}
		if job.src.Back != nil {
			job.dst.Back = &Node{}
			queue = append(queue, cloneJob{src: job.src.Back, dst: job.dst.Back})
		}
	}
	return root
}
