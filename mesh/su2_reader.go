package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadSU2 reads an SU2 native format file. Surface and line elements are
// skipped; all volume element kinds load so the evaluator can reject non-tet
// meshes itself.
func ReadSU2(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m := NewMesh()
	scanner := bufio.NewScanner(file)

	var ndime int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}

		if strings.HasPrefix(line, "NDIME=") {
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 3 {
				return nil, fmt.Errorf("only 3D meshes are supported, got NDIME=%d", ndime)
			}

		} else if strings.HasPrefix(line, "NELEM=") {
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)

			m.Elements = make([][]int, 0, nelem)
			m.ElementKinds = make([]ElementKind, 0, nelem)

			for i := 0; i < nelem; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())

				if len(fields) < 2 {
					continue
				}

				su2Type, _ := strconv.Atoi(fields[0])

				var kind ElementKind
				validElem := true

				switch su2Type {
				case 10: // Tet
					kind = Tet
				case 12: // Hex
					kind = Hex
				case 13: // Prism
					kind = Prism
				case 14: // Pyramid
					kind = Pyramid
				default:
					validElem = false // Skip 1D/2D elements
				}

				if validElem && len(fields) >= kind.VertexCount()+1 {
					numNodes := kind.VertexCount()
					verts := make([]int, numNodes)
					for j := 0; j < numNodes; j++ {
						verts[j], _ = strconv.Atoi(fields[1+j])
					}

					m.Elements = append(m.Elements, verts)
					m.ElementKinds = append(m.ElementKinds, kind)
				}
			}

		} else if strings.HasPrefix(line, "NPOIN=") {
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)

			m.Vertices = make([][]float64, npoin)

			for i := 0; i < npoin; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())

				if len(fields) >= ndime {
					coords := make([]float64, 3)
					for j := 0; j < ndime; j++ {
						coords[j], _ = strconv.ParseFloat(fields[j], 64)
					}

					ptID := i
					// Older SU2 files append the point index as the last field
					if len(fields) > ndime {
						ptID, _ = strconv.Atoi(fields[len(fields)-1])
					}
					if ptID >= 0 && ptID < npoin {
						m.Vertices[ptID] = coords
					}
				}
			}

		} else if strings.HasPrefix(line, "NMARK=") {
			var nmark int
			fmt.Sscanf(line, "NMARK=%d", &nmark)

			// Boundary markers carry no volume elements; skip their blocks
			for i := 0; i < nmark; i++ {
				scanner.Scan()
				scanner.Scan()
				elemLine := strings.TrimSpace(scanner.Text())
				var nMarkerElems int
				fmt.Sscanf(elemLine, "MARKER_ELEMS=%d", &nMarkerElems)
				for j := 0; j < nMarkerElems; j++ {
					scanner.Scan()
				}
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	m.NumElements = len(m.Elements)
	m.NumVertices = len(m.Vertices)

	if err = m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}
