package renderer

import (
	"encoding/binary"
	"math"
)

// gridVertexStride is the byte size of one vertex: position vec3 + color vec3.
const gridVertexStride = 24

type gridVertex struct {
	Position [3]float32
	Color    [3]float32
}

var (
	gridLineColor = [3]float32{0.35, 0.35, 0.35}
	gridAxisX     = [3]float32{0.8, 0.2, 0.2}
	gridAxisZ     = [3]float32{0.2, 0.3, 0.8}
)

// gridVertices builds a line list for a square ground grid on the y = 0 plane centered on the
// origin, with halfLines lines either side of each axis. The X axis line is red, the Z axis line blue.
func gridVertices(halfLines int, spacing float32) []gridVertex {
	if halfLines < 1 || spacing <= 0 {
		return nil
	}
	extent := float32(halfLines) * spacing
	verts := make([]gridVertex, 0, (2*halfLines+1)*4)
	for i := -halfLines; i <= halfLines; i++ {
		offset := float32(i) * spacing

		// line parallel to X at z = offset
		colX := gridLineColor
		if i == 0 {
			colX = gridAxisX
		}
		verts = append(verts,
			gridVertex{Position: [3]float32{-extent, 0, offset}, Color: colX},
			gridVertex{Position: [3]float32{extent, 0, offset}, Color: colX},
		)

		// line parallel to Z at x = offset
		colZ := gridLineColor
		if i == 0 {
			colZ = gridAxisZ
		}
		verts = append(verts,
			gridVertex{Position: [3]float32{offset, 0, -extent}, Color: colZ},
			gridVertex{Position: [3]float32{offset, 0, extent}, Color: colZ},
		)
	}
	return verts
}

// marshalGrid serializes vertices into the little-endian layout the grid shader reads.
func marshalGrid(verts []gridVertex) []byte {
	buf := make([]byte, len(verts)*gridVertexStride)
	for i, v := range verts {
		base := i * gridVertexStride
		for j := range 3 {
			binary.LittleEndian.PutUint32(buf[base+j*4:], math.Float32bits(v.Position[j]))
			binary.LittleEndian.PutUint32(buf[base+12+j*4:], math.Float32bits(v.Color[j]))
		}
	}
	return buf
}
