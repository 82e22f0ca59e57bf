package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/planwerk/roomview/pkg/geometry"
)

// Parse reads the extractor's line-record mesh format and returns a Mesh.
//
// Each line's first token selects the record kind:
//
//	v x y z        vertex position, appended in file order
//	f a b c ...    face, 1-based vertex references, length >= 3
//
// Unrecognized record kinds are ignored so newer extractor output still
// loads. A face reference may carry secondary attribute indices ("7/2/3");
// only the leading position index is used. Faces with more than three
// vertices are fan-triangulated from the first vertex, which splits quads
// along the first-to-third diagonal. Faces referencing vertices outside
// the parsed range are dropped; the rest of the mesh still loads. Empty
// input yields an empty mesh, not an error.
func Parse(reader io.Reader) (*Mesh, error) {
	m := NewMesh()

	// Faces are collected raw and resolved after the scan, so a face is
	// validated against the full vertex list regardless of record order.
	var faces [][]int

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			m.Positions = append(m.Positions, geometry.NewVector3(x, y, z))

		case "f":
			if len(fields) < 4 {
				continue
			}
			refs, ok := parseFaceRefs(fields[1:])
			if ok {
				faces = append(faces, refs)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh text: %w", err)
	}

	for _, face := range faces {
		if !inRange(face, len(m.Positions)) {
			continue
		}
		// Fan triangulation from the first vertex. For quads this is the
		// first-to-third diagonal split; correctness for concave faces is
		// not guaranteed, which is acceptable for axis-aligned room boxes.
		for i := 1; i+1 < len(face); i++ {
			m.Indices = append(m.Indices, face[0], face[i], face[i+1])
		}
	}

	m.computeNormals()
	return m, nil
}

// ParseString parses mesh text held in memory. It cannot fail: malformed
// records degrade to an empty or partial mesh per the rules of Parse.
func ParseString(text string) *Mesh {
	m, _ := Parse(strings.NewReader(text))
	return m
}

// ParseFile parses a mesh from a file on disk
func ParseFile(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer file.Close()

	m, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// parseFaceRefs converts 1-based face references to 0-based vertex indices.
// The leading numeric token of a composite reference is the position index.
func parseFaceRefs(refs []string) ([]int, bool) {
	out := make([]int, 0, len(refs))
	for _, ref := range refs {
		lead, _, _ := strings.Cut(ref, "/")
		idx, err := strconv.Atoi(lead)
		if err != nil {
			return nil, false
		}
		out = append(out, idx-1)
	}
	return out, true
}

func inRange(indices []int, vertexCount int) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}
