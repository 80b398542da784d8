package main

import "github.com/hajimehoshi/ebiten/v2"

// vertex is one corner of the fullscreen quad: a position in normalized
// device coordinates (-1..1, y up) and a texture coordinate (0..1, v=0 at
// the bottom of the texture).
type vertex struct {
	position  [2]float32
	texCoords [2]float32
}

// fullscreenQuad returns the two-triangle mesh covering the whole
// viewport. Six vertices, triangle list, no index sharing.
func fullscreenQuad() [6]vertex {
	return [6]vertex{
		{position: [2]float32{-1, -1}, texCoords: [2]float32{0, 0}},
		{position: [2]float32{-1, 1}, texCoords: [2]float32{0, 1}},
		{position: [2]float32{1, 1}, texCoords: [2]float32{1, 1}},

		{position: [2]float32{-1, -1}, texCoords: [2]float32{0, 0}},
		{position: [2]float32{1, 1}, texCoords: [2]float32{1, 1}},
		{position: [2]float32{1, -1}, texCoords: [2]float32{1, 0}},
	}
}

// quadIndices is the index descriptor for the non-indexed triangle list.
var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// quadVertices maps the canonical quad onto the screen for ebiten's fixed
// vertex stage. NDC y=+1 is the top of the window; texture v=0 is the
// first row of the vertically flipped texture, i.e. the bottom of the
// original image, so SrcY grows with v.
func quadVertices(screenW, screenH, texW, texH int) []ebiten.Vertex {
	quad := fullscreenQuad()
	vs := make([]ebiten.Vertex, len(quad))
	for i, q := range quad {
		vs[i] = ebiten.Vertex{
			DstX:   (q.position[0] + 1) / 2 * float32(screenW),
			DstY:   (1 - q.position[1]) / 2 * float32(screenH),
			SrcX:   q.texCoords[0] * float32(texW),
			SrcY:   q.texCoords[1] * float32(texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return vs
}
