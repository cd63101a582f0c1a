package mesh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ElementKind identifies a volume element type.
type ElementKind int

const (
	Tet ElementKind = iota
	Hex
	Prism
	Pyramid
)

func (k ElementKind) String() string {
	return [...]string{"Tet", "Hex", "Prism", "Pyramid"}[k]
}

// VertexCount returns the corner node count for the element kind.
func (k ElementKind) VertexCount() int {
	return [...]int{4, 8, 6, 5}[k]
}

// ErrUnsupportedElementKind signals a mesh carrying volume elements other
// than tetrahedra; the evaluators accept pure tet meshes only.
var ErrUnsupportedElementKind = errors.New("unsupported element kind")

// Mesh is an unstructured volume mesh with a per-element attribute store.
// Derived attributes are recomputed on every run; nothing persists between
// runs except what the writer serializes.
type Mesh struct {
	Vertices     [][]float64 // Vertex coordinates [nvertices][3]
	Elements     [][]int     // Element to vertex connectivity [nelems][nverts_per_elem]
	ElementKinds []ElementKind

	NumElements int
	NumVertices int

	Attributes *AttributeStore
}

func NewMesh() *Mesh {
	return &Mesh{
		Attributes: NewAttributeStore(),
	}
}

// ReadMeshFile reads a mesh file based on extension.
func ReadMeshFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".su2":
		return ReadSU2(filename)
	case ".msh":
		return ReadGmsh(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// VerifyTetrahedral confirms every volume element is a 4-vertex tet. A mesh
// with zero elements passes trivially.
func (m *Mesh) VerifyTetrahedral() error {
	for i := 0; i < m.NumElements; i++ {
		if m.ElementKinds[i] != Tet {
			return fmt.Errorf("element %d is %v: %w - only tet meshes are supported",
				i, m.ElementKinds[i], ErrUnsupportedElementKind)
		}
		if len(m.Elements[i]) != 4 {
			return fmt.Errorf("element %d has %d vertices: %w",
				i, len(m.Elements[i]), ErrUnsupportedElementKind)
		}
	}
	return nil
}

// Validate checks vertex index bounds and distinctness for every element.
func (m *Mesh) Validate() error {
	for i, verts := range m.Elements {
		seen := make(map[int]bool, len(verts))
		for _, v := range verts {
			if v < 0 || v >= m.NumVertices {
				return fmt.Errorf("element %d references vertex %d, out of bounds [0,%d)",
					i, v, m.NumVertices)
			}
			if seen[v] {
				return fmt.Errorf("element %d references vertex %d twice", i, v)
			}
			seen[v] = true
		}
	}
	return nil
}

// Statistics returns a printable summary of the mesh contents.
func (m *Mesh) Statistics() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mesh Statistics:\n")
	fmt.Fprintf(&sb, "  Vertices: %d\n", m.NumVertices)
	fmt.Fprintf(&sb, "  Elements: %d\n", m.NumElements)

	kindCounts := make(map[ElementKind]int)
	for _, k := range m.ElementKinds {
		kindCounts[k]++
	}
	for k, count := range kindCounts {
		fmt.Fprintf(&sb, "    %s: %d\n", k, count)
	}
	return sb.String()
}
