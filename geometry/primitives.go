package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/tetqual/mesh"
)

// tetEdges lists the six edges of a tetrahedron by local vertex pair, and
// tetEdgeFaces the two faces (identified by opposite vertex) sharing each.
var (
	tetEdges     = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	tetEdgeFaces = [6][2]int{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}}
)

func tetVertices(m *mesh.Mesh, k int) (v [4]r3.Vec) {
	for i, vi := range m.Elements[k] {
		c := m.Vertices[vi]
		v[i] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}
	return
}

// Orientations returns one signed value per element: the scalar triple
// product of the three edge vectors out of vertex 0, which is six times the
// signed volume. Exactly zero for a flat element.
func Orientations(m *mesh.Mesh) (orients []float64) {
	orients = make([]float64, m.NumElements)
	for k := range orients {
		v := tetVertices(m, k)
		a, b, c := r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]), r3.Sub(v[3], v[0])
		orients[k] = r3.Dot(a, r3.Cross(b, c))
	}
	return
}

// Inradii returns the inscribed sphere radius per element, 3V / (sum of face
// areas). A flat element with nonzero face area yields 0; a fully collapsed
// one yields NaN.
func Inradii(m *mesh.Mesh) (radii []float64) {
	radii = make([]float64, m.NumElements)
	for k := range radii {
		v := tetVertices(m, k)
		a, b, c := r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]), r3.Sub(v[3], v[0])
		vol := math.Abs(r3.Dot(a, r3.Cross(b, c))) / 6

		var area float64
		for _, f := range [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}} {
			e1 := r3.Sub(v[f[1]], v[f[0]])
			e2 := r3.Sub(v[f[2]], v[f[0]])
			area += r3.Norm(r3.Cross(e1, e2)) / 2
		}
		radii[k] = 3 * vol / area
	}
	return
}

// Circumradii returns the circumscribed sphere radius per element. For a
// degenerate element the division by the vanishing triple product propagates
// to +Inf or NaN.
func Circumradii(m *mesh.Mesh) (radii []float64) {
	radii = make([]float64, m.NumElements)
	for k := range radii {
		v := tetVertices(m, k)
		a, b, c := r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]), r3.Sub(v[3], v[0])

		num := r3.Add(
			r3.Add(
				r3.Scale(r3.Dot(a, a), r3.Cross(b, c)),
				r3.Scale(r3.Dot(b, b), r3.Cross(c, a))),
			r3.Scale(r3.Dot(c, c), r3.Cross(a, b)))
		den := 2 * r3.Dot(a, r3.Cross(b, c))
		radii[k] = r3.Norm(r3.Scale(1/den, num))
	}
	return
}

// DihedralAngles returns the six interior dihedral angles per element, in
// radians, ordered by tetEdges. Degenerate faces produce NaN entries.
func DihedralAngles(m *mesh.Mesh) (angles [][]float64) {
	angles = make([][]float64, m.NumElements)
	for k := range angles {
		v := tetVertices(m, k)

		// Outward normal of the face opposite each vertex
		var normals [4]r3.Vec
		for i := 0; i < 4; i++ {
			var f [3]int
			pos := 0
			for j := 0; j < 4; j++ {
				if j != i {
					f[pos] = j
					pos++
				}
			}
			n := r3.Cross(r3.Sub(v[f[1]], v[f[0]]), r3.Sub(v[f[2]], v[f[0]]))
			if r3.Dot(n, r3.Sub(v[i], v[f[0]])) > 0 {
				n = r3.Scale(-1, n)
			}
			normals[i] = n
		}

		angles[k] = make([]float64, 6)
		for e, faces := range tetEdgeFaces {
			ni, nj := normals[faces[0]], normals[faces[1]]
			cos := -r3.Dot(ni, nj) / (r3.Norm(ni) * r3.Norm(nj))
			// Clamp rounding excursions; NaN passes through untouched
			if cos > 1 {
				cos = 1
			} else if cos < -1 {
				cos = -1
			}
			angles[k][e] = math.Acos(cos)
		}
	}
	return
}

// RadiusEdgeRatios returns circumradius over shortest edge length per
// element.
func RadiusEdgeRatios(m *mesh.Mesh) (ratios []float64) {
	ratios = Circumradii(m)
	for k := range ratios {
		lMin, _ := edgeExtremes(m, k)
		ratios[k] /= lMin
	}
	return
}

// EdgeRatios returns longest over shortest edge length per element.
func EdgeRatios(m *mesh.Mesh) (ratios []float64) {
	ratios = make([]float64, m.NumElements)
	for k := range ratios {
		lMin, lMax := edgeExtremes(m, k)
		ratios[k] = lMax / lMin
	}
	return
}

func edgeExtremes(m *mesh.Mesh, k int) (lMin, lMax float64) {
	v := tetVertices(m, k)
	lMin = math.Inf(1)
	for _, e := range tetEdges {
		l := r3.Norm(r3.Sub(v[e[1]], v[e[0]]))
		if l < lMin {
			lMin = l
		}
		if l > lMax {
			lMax = l
		}
	}
	return
}

// MaterializeEdgeRatios computes and stores the voxel_radius_edge_ratio and
// voxel_edge_ratio attributes on the mesh.
func MaterializeEdgeRatios(m *mesh.Mesh) {
	m.Attributes.SetScalar("voxel_radius_edge_ratio", RadiusEdgeRatios(m))
	m.Attributes.SetScalar("voxel_edge_ratio", EdgeRatios(m))
}
