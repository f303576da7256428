// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

// readBody parses the decompressed payload into an ArtFile, leaving
// Pins unset: the caller (ParseFromBytes) fills that in from the
// header, since pins live outside the compressed region.
func readBody(buf []byte) (*ArtFile, error) {
	r := newByteReader(buf)

	af := &ArtFile{}
	af.Version = r.u32()
	af.ActiveLayer = r.u32()
	r.u32() // unused
	af.BackgroundColor = r.rgb()
	af.BackgroundAlpha = r.f32()
	r.u32() // unused
	r.u32() // unused
	r.u32() // unused
	r.u32() // unused
	af.PenInfo = readPenInfo(r)
	r.u32() // unused
	r.u32() // unused
	af.ViewMatrix = r.matrix16()
	af.ViewZoom = r.f32()

	layerOrderCount := r.u32()
	if r.Err() != nil {
		return nil, r.Err()
	}
	af.LayerOrder = make([]uint32, 0, layerOrderCount)
	for i := uint32(0); i < layerOrderCount; i++ {
		af.LayerOrder = append(af.LayerOrder, r.u32())
	}

	layerCount := r.u32()
	if r.Err() != nil {
		return nil, r.Err()
	}
	af.Layers = make([]LayerInfo, 0, layerCount)
	for i := uint32(0); i < layerCount; i++ {
		li, err := readLayerInfo(r)
		if err != nil {
			return nil, err
		}
		af.Layers = append(af.Layers, li)
	}

	imageCount := r.u32()
	if r.Err() != nil {
		return nil, r.Err()
	}
	af.Images = make([]Image, 0, imageCount)
	for i := uint32(0); i < imageCount; i++ {
		img, err := readImage(r)
		if err != nil {
			return nil, err
		}
		af.Images = append(af.Images, img)
	}

	actionCount := r.u32()
	if r.Err() != nil {
		return nil, r.Err()
	}
	af.Actions = make([]LayerAction, 0, actionCount)
	for i := uint32(0); i < actionCount; i++ {
		la, err := readLayerAction(r)
		if err != nil {
			return nil, err
		}
		af.Actions = append(af.Actions, la)
	}

	if r.Err() != nil {
		return nil, r.Err()
	}
	return af, nil
}

func readPenInfo(r *byteReader) PenInfo {
	return PenInfo{
		Kind:       r.u32(),
		Color:      r.rgb(),
		Noise:      r.f32(),
		Size:       r.f32(),
		SizeMin:    r.f32(),
		Opacity:    r.f32(),
		OpacityMin: r.f32(),
		IsEraser:   r.u32() != 0,
	}
}

func readLayerInfo(r *byteReader) (LayerInfo, error) {
	visible := r.u32() != 0
	opacity := r.f32()
	name, err := r.fixedString256()
	if err != nil {
		return LayerInfo{}, err
	}
	actionCount := r.u32()
	matrix := r.matrix16()
	zoom := r.f32()
	if r.Err() != nil {
		return LayerInfo{}, r.Err()
	}
	return LayerInfo{
		Visible:     visible,
		Opacity:     opacity,
		Name:        name,
		ActionCount: actionCount,
		Matrix:      matrix,
		Zoom:        zoom,
	}, nil
}

func readImage(r *byteReader) (Image, error) {
	kind := r.u32()
	n := r.u32()
	raw := r.bytes(int(n))
	if r.Err() != nil {
		return Image{}, r.Err()
	}
	return Image{Kind: kind, Raw: raw}, nil
}
