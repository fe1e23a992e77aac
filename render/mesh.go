// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/curveviz"
)

// VertexStride is the byte stride per packed vertex.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// Vertex is one recorded vertex. Color is non-premultiplied.
type Vertex struct {
	Position [2]float32
	Color    [4]float32
}

// Batch is the geometry recorded between one Begin and End pair.
type Batch struct {
	Primitive curveviz.Primitive
	Material  curveviz.Material
	Vertices  []Vertex
}

// Topology returns the GPU topology of the batch once packed.
func (b *Batch) Topology() gputypes.PrimitiveTopology {
	return b.Primitive.Topology()
}

// Triangles returns the vertices as the topology expects them. Quads are
// split into two triangles (0, 1, 2) and (0, 2, 3); an incomplete trailing
// quad is dropped. Line strips are returned as recorded.
func (b *Batch) Triangles() []Vertex {
	if b.Primitive != curveviz.PrimitiveQuads {
		return b.Vertices
	}
	quads := len(b.Vertices) / 4
	out := make([]Vertex, 0, quads*6)
	for q := range quads {
		v := b.Vertices[q*4 : q*4+4]
		out = append(out, v[0], v[1], v[2], v[0], v[2], v[3])
	}
	return out
}

// AppendBytes appends the packed vertex data of the batch to dst.
// Colors are premultiplied to match BlendState.
func (b *Batch) AppendBytes(dst []byte) []byte {
	for _, v := range b.Triangles() {
		a := v.Color[3]
		dst = appendFloat32(dst, v.Position[0])
		dst = appendFloat32(dst, v.Position[1])
		dst = appendFloat32(dst, v.Color[0]*a)
		dst = appendFloat32(dst, v.Color[1]*a)
		dst = appendFloat32(dst, v.Color[2]*a)
		dst = appendFloat32(dst, a)
	}
	return dst
}

func appendFloat32(dst []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
}

// VertexLayout returns the vertex buffer layout of packed batches.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
		},
	}
}

// BlendState returns the blend state packed colors are meant for.
func BlendState() gputypes.BlendState {
	return gputypes.BlendStatePremultiplied()
}

// Mesh records overlay geometry for upload by a host that owns the GPU
// device. It implements curveviz.Surface and curveviz.Device.
//
// Mesh is not safe for concurrent use.
type Mesh struct {
	batches []Batch
	open    bool
	color   [4]float32

	nextMaterial int
	live         int
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{color: [4]float32{1, 1, 1, 1}}
}

// Begin implements curveviz.Surface.
func (m *Mesh) Begin(p curveviz.Primitive, mat curveviz.Material) {
	if m.open {
		panic("render: Mesh.Begin called before End")
	}
	m.open = true
	m.batches = append(m.batches, Batch{Primitive: p, Material: mat})
}

// Color implements curveviz.Surface.
func (m *Mesh) Color(c curveviz.RGBA) {
	m.color = [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Vertex implements curveviz.Surface.
func (m *Mesh) Vertex(x, y float64) {
	if !m.open {
		panic("render: Mesh.Vertex called outside Begin/End")
	}
	b := &m.batches[len(m.batches)-1]
	b.Vertices = append(b.Vertices, Vertex{
		Position: [2]float32{float32(x), float32(y)},
		Color:    m.color,
	})
}

// End implements curveviz.Surface. Empty batches are discarded.
func (m *Mesh) End() {
	if !m.open {
		panic("render: Mesh.End called without Begin")
	}
	m.open = false
	if len(m.batches[len(m.batches)-1].Vertices) == 0 {
		m.batches = m.batches[:len(m.batches)-1]
	}
}

// Batches returns the recorded batches in draw order.
func (m *Mesh) Batches() []Batch {
	return m.batches
}

// VertexCount returns the number of recorded vertices.
func (m *Mesh) VertexCount() int {
	n := 0
	for i := range m.batches {
		n += len(m.batches[i].Vertices)
	}
	return n
}

// Bytes packs every batch into one buffer. Batch i starts at
// offsets[i] bytes.
func (m *Mesh) Bytes() (data []byte, offsets []int) {
	offsets = make([]int, len(m.batches))
	for i := range m.batches {
		offsets[i] = len(data)
		data = m.batches[i].AppendBytes(data)
	}
	return data, offsets
}

// Reset drops the recorded batches. Materials stay alive.
func (m *Mesh) Reset() {
	if m.open {
		panic("render: Mesh.Reset called before End")
	}
	clear(m.batches)
	m.batches = m.batches[:0]
}

// NewMaterial implements curveviz.Device.
func (m *Mesh) NewMaterial() curveviz.Material {
	m.nextMaterial++
	m.live++
	return &MeshMaterial{mesh: m, id: m.nextMaterial}
}

// LiveMaterials returns the number of materials created and not yet
// released.
func (m *Mesh) LiveMaterials() int {
	return m.live
}

// MeshMaterial is the material handed out by a Mesh.
type MeshMaterial struct {
	mesh     *Mesh
	id       int
	released bool
}

// ID returns a number unique among the mesh's materials.
func (mm *MeshMaterial) ID() int {
	return mm.id
}

// Release implements curveviz.Material.
func (mm *MeshMaterial) Release() {
	if mm.released {
		return
	}
	mm.released = true
	mm.mesh.live--
}
