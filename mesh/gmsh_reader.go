package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadGmsh reads a Gmsh format file (version 2.2). Only volume elements are
// kept; lower-dimensional elements and $ElementData blocks are skipped.
func ReadGmsh(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m := NewMesh()
	scanner := bufio.NewScanner(file)

	var version string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "$MeshFormat":
			scanner.Scan()
			parts := strings.Fields(scanner.Text())
			if len(parts) > 0 {
				version = parts[0]
			}
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "$EndMeshFormat" {
					break
				}
			}

		case "$Nodes":
			scanner.Scan()
			numNodes, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			m.Vertices = make([][]float64, numNodes)

			for i := 0; i < numNodes; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())
				if len(fields) >= 4 {
					id, _ := strconv.Atoi(fields[0])
					x, _ := strconv.ParseFloat(fields[1], 64)
					y, _ := strconv.ParseFloat(fields[2], 64)
					z, _ := strconv.ParseFloat(fields[3], 64)
					if id >= 1 && id <= numNodes {
						m.Vertices[id-1] = []float64{x, y, z}
					}
				}
			}
			// Skip $EndNodes
			scanner.Scan()

		case "$Elements":
			scanner.Scan()
			numElems, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

			for i := 0; i < numElems; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())
				if len(fields) < 3 {
					continue
				}

				elemType, _ := strconv.Atoi(fields[1])

				var kind ElementKind
				validElem := true

				switch elemType {
				case 4: // 4-node tet
					kind = Tet
				case 5: // 8-node hex
					kind = Hex
				case 6: // 6-node prism
					kind = Prism
				case 7: // 5-node pyramid
					kind = Pyramid
				case 11: // 10-node tet (2nd order) - corner nodes only
					kind = Tet
				default:
					validElem = false
				}

				if validElem {
					numTags, _ := strconv.Atoi(fields[2])
					numNodes := kind.VertexCount()

					offset := 3 + numTags
					if len(fields) >= offset+numNodes {
						// Convert to 0-indexed
						verts := make([]int, numNodes)
						for j := 0; j < numNodes; j++ {
							v, _ := strconv.Atoi(fields[offset+j])
							verts[j] = v - 1
						}

						m.Elements = append(m.Elements, verts)
						m.ElementKinds = append(m.ElementKinds, kind)
					}
				}
			}
			// Skip $EndElements
			scanner.Scan()
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	if strings.HasPrefix(version, "4") {
		return nil, fmt.Errorf("Gmsh format version %s not supported, export as version 2.2", version)
	}

	m.NumElements = len(m.Elements)
	m.NumVertices = len(m.Vertices)

	if err = m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}
