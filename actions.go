// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

const (
	tagStroke         = 0x01
	tagUnknown05      = 0x05
	tagDrawImage      = 0x07
	tagUnknown08      = 0x08
	tagLayerMerge     = 0x0c
	tagLayerTransform = 0x0d
	tagCutRect        = 0x0e
	tagPasteLayer     = 0x0f
	tagPenTransform   = 0x33
	tagPenProperties  = 0x34
	tagPenColor       = 0x35
	tagPenIsEraser    = 0x36
)

// readLayerAction reads one (layer index, action) entry from the
// action log and dispatches on its leading tag word.
func readLayerAction(r *byteReader) (LayerAction, error) {
	layer := r.u32()
	tag := r.u32()
	if r.Err() != nil {
		return LayerAction{}, r.Err()
	}

	action, err := readAction(r, tag)
	if err != nil {
		return LayerAction{}, err
	}
	if r.Err() != nil {
		return LayerAction{}, r.Err()
	}
	return LayerAction{Layer: layer, Action: action}, nil
}

func readAction(r *byteReader, tag uint32) (Action, error) {
	switch tag {
	case tagStroke:
		return readActionStroke(r)
	case tagUnknown05:
		var raw [0x14]byte
		copy(raw[:], r.take(0x14))
		return UnknownAction05{Raw: raw}, nil
	case tagUnknown08:
		return UnknownAction08{Value: r.u32()}, nil
	case tagPenTransform:
		return PenTransform{Matrix: r.matrix16(), Zoom: r.f32()}, nil
	case tagPenProperties:
		return PenProperties{Update: PenUpdate{
			Kind:       r.u32(),
			Noise:      r.f32(),
			Size:       r.f32(),
			SizeMin:    r.f32(),
			Opacity:    r.f32(),
			OpacityMin: r.f32(),
		}}, nil
	case tagPenColor:
		return PenColor{Color: r.rgb()}, nil
	case tagPenIsEraser:
		return PenIsEraser{IsEraser: r.u32() != 0}, nil
	case tagPasteLayer:
		fromLayer := r.u32()
		rect := r.rect4()
		m1 := r.matrix16()
		z1 := r.f32()
		m2 := r.matrix16()
		z2 := r.f32()
		return PasteLayer{Props: PasteProps{
			FromLayer: fromLayer,
			Rect:      rect,
			Matrix1:   m1,
			Zoom1:     z1,
			Matrix2:   m2,
			Zoom2:     z2,
		}}, nil
	case tagLayerTransform:
		return LayerTransform{Matrix: r.matrix16(), Zoom: r.f32()}, nil
	case tagCutRect:
		return CutRect{Rect: r.rect4()}, nil
	case tagLayerMerge:
		other := r.u32()
		opSrc := r.f32()
		opDst := r.f32()
		matrix := r.matrix16()
		zoom := r.f32()
		return LayerMerge{
			Other:      other,
			OpacitySrc: opSrc,
			OpacityDst: opDst,
			Matrix:     matrix,
			Zoom:       zoom,
		}, nil
	case tagDrawImage:
		dstCenter := [2]float32{r.f32(), r.f32()}
		dstSize := [2]float32{r.f32(), r.f32()}
		unused := r.u32()
		srcSize := [2]uint32{r.u32(), r.u32()}
		imageID := r.u32()
		return DrawImage{
			DstCenter: dstCenter,
			DstSize:   dstSize,
			Unused:    unused,
			SrcSize:   srcSize,
			ImageID:   imageID,
		}, nil
	default:
		return nil, errBadAction(tag)
	}
}

// readActionStroke reads a Stroke action: an absolute first point, then
// count-1 points delta-coded against the previous point. The wire
// layout packs each delta into a 5-byte record: a little-endian u32
// holding the dx magnitude in bits 0-13 (negated when bit 14 is set),
// the dy magnitude in bits 15-28 (negated when bit 20 is set; that bit
// is also bit 5 of the dy magnitude) and the low 2 bits of pressure in
// bits 30-31, followed by a trailing byte holding the high 8 bits of
// pressure.
func readActionStroke(r *byteReader) (Action, error) {
	count := r.u32()
	if r.Err() != nil {
		return nil, r.Err()
	}
	points := make([]StrokePoint, 0, count)
	if count == 0 {
		return Stroke{Points: points}, nil
	}

	cur := StrokePoint{X: r.f32(), Y: r.f32(), P: r.f32()}
	if r.Err() != nil {
		return nil, r.Err()
	}
	points = append(points, cur)

	for i := uint32(1); i < count; i++ {
		word := r.u32()
		tail := r.u8()
		if r.Err() != nil {
			return nil, r.Err()
		}

		dx := float32(word & 0x3fff)
		if word&(1<<14) != 0 {
			dx = -dx
		}
		dy := float32((word >> 15) & 0x3fff)
		if word&(1<<20) != 0 {
			dy = -dy
		}
		p := float32((word >> 30) | (uint32(tail) << 2))

		cur.X += dx / 32.0
		cur.Y += dy / 32.0
		cur.P = p / 1023.0
		points = append(points, cur)
	}

	return Stroke{Points: points}, nil
}
