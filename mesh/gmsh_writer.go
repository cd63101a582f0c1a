package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

var gmshElemType = map[ElementKind]int{
	Tet:     4,
	Hex:     5,
	Prism:   6,
	Pyramid: 7,
}

// WriteGmsh writes the mesh in Gmsh 2.2 ASCII format with one $ElementData
// block per stored attribute, so every computed per-element array travels
// with the saved mesh. Bool columns are written as 0/1.
func WriteGmsh(m *Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	fmt.Fprintf(w, "$Nodes\n%d\n", m.NumVertices)
	for i, v := range m.Vertices {
		fmt.Fprintf(w, "%d %s %s %s\n", i+1,
			formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
	}
	fmt.Fprintf(w, "$EndNodes\n")

	fmt.Fprintf(w, "$Elements\n%d\n", m.NumElements)
	for i, verts := range m.Elements {
		etype, ok := gmshElemType[m.ElementKinds[i]]
		if !ok {
			return fmt.Errorf("element %d: no Gmsh type for kind %v", i, m.ElementKinds[i])
		}
		// Two zero tags (physical, geometric), 1-based node ids
		fmt.Fprintf(w, "%d %d 2 0 0", i+1, etype)
		for _, v := range verts {
			fmt.Fprintf(w, " %d", v+1)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "$EndElements\n")

	for _, name := range m.Attributes.ScalarNames() {
		attr, _ := m.Attributes.ScalarN(name)
		if err = writeElementData(w, name, attr.Data, attr.Components, m.NumElements); err != nil {
			return err
		}
	}
	for _, name := range m.Attributes.FlagNames() {
		flags, _ := m.Attributes.Flag(name)
		vals := make([]float64, len(flags))
		for i, b := range flags {
			if b {
				vals[i] = 1
			}
		}
		if err = writeElementData(w, name, vals, 1, m.NumElements); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeElementData(w *bufio.Writer, name string, data []float64, components, numElems int) error {
	if len(data) != components*numElems {
		return fmt.Errorf("attribute %s: %d values for %d elements with %d components",
			name, len(data), numElems, components)
	}
	fmt.Fprintf(w, "$ElementData\n")
	fmt.Fprintf(w, "1\n%q\n", name)   // string tags
	fmt.Fprintf(w, "1\n0\n")          // real tags: time
	fmt.Fprintf(w, "3\n0\n%d\n%d\n",  // int tags: step, components, count
		components, numElems)
	for i := 0; i < numElems; i++ {
		fmt.Fprintf(w, "%d", i+1)
		for c := 0; c < components; c++ {
			fmt.Fprintf(w, " %s", formatFloat(data[i*components+c]))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "$EndElementData\n")
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
