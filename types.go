// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

// ArtFile is a fully parsed ART document: the editable canvas state
// plus the chronological log of actions that produced it.
type ArtFile struct {
	Version          uint32
	ActiveLayer      uint32
	BackgroundColor  RGB
	BackgroundAlpha  float32
	PenInfo          PenInfo
	ViewMatrix       [16]float32
	ViewZoom         float32
	Pins             []ArtPin
	LayerOrder       []uint32
	Layers           []LayerInfo
	Images           []Image
	Actions          []LayerAction
}

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// PenInfo describes the current drawing tool.
type PenInfo struct {
	Kind        uint32
	Color       RGB
	Noise       float32
	Size        float32
	SizeMin     float32
	Opacity     float32
	OpacityMin  float32
	IsEraser    bool
}

// ArtPin is a named camera bookmark, present only in version-0x82
// headers.
type ArtPin struct {
	Matrix [16]float32
	Name   string
}

// LayerInfo describes one canvas layer.
type LayerInfo struct {
	Visible     bool
	Opacity     float32
	Name        string
	ActionCount uint32
	Matrix      [16]float32
	Zoom        float32
}

// Image is a single embedded raster asset, referenced by index from
// DrawImage actions.
type Image struct {
	Kind uint32
	Raw  []byte
}

// StrokePoint is one sample of a freehand stroke: canvas coordinates
// plus pressure, both already decoded from the format's delta-coded
// wire representation.
type StrokePoint struct {
	X, Y, P float32
}

// PenUpdate carries every pen parameter except color and eraser state,
// which have their own dedicated actions.
type PenUpdate struct {
	Kind       uint32
	Noise      float32
	Size       float32
	SizeMin    float32
	Opacity    float32
	OpacityMin float32
}

// PasteProps describes a cross-layer paste: the source layer, the
// source rectangle, and the transforms of both layers at paste time.
type PasteProps struct {
	FromLayer uint32
	Rect      [4]float32
	Matrix1   [16]float32
	Zoom1     float32
	Matrix2   [16]float32
	Zoom2     float32
}

// LayerAction pairs an action with the index of the layer it applies
// to, matching the (layer, action) tuples in the action log.
type LayerAction struct {
	Layer  uint32
	Action Action
}

// Action is the sum type of every recognized action-log entry. Each
// variant below implements it with an unexported marker method, so the
// set of variants is closed to this package.
type Action interface {
	isAction()
}

// Stroke is a freehand pen stroke: a run of points, the first absolute
// and the rest delta-coded.
type Stroke struct {
	Points []StrokePoint
}

func (Stroke) isAction() {}

// PenTransform records a change to the active pen's camera transform.
type PenTransform struct {
	Matrix [16]float32
	Zoom   float32
}

func (PenTransform) isAction() {}

// PenProperties updates the active pen's non-color parameters.
type PenProperties struct {
	Update PenUpdate
}

func (PenProperties) isAction() {}

// PenColor sets the active pen's color.
type PenColor struct {
	Color RGB
}

func (PenColor) isAction() {}

// PenIsEraser toggles eraser mode for the active pen.
type PenIsEraser struct {
	IsEraser bool
}

func (PenIsEraser) isAction() {}

// PasteLayer pastes a rectangular region from another layer.
type PasteLayer struct {
	Props PasteProps
}

func (PasteLayer) isAction() {}

// LayerTransform records a change to a layer's camera transform.
type LayerTransform struct {
	Matrix [16]float32
	Zoom   float32
}

func (LayerTransform) isAction() {}

// CutRect clears a rectangular region of the layer.
type CutRect struct {
	Rect [4]float32
}

func (CutRect) isAction() {}

// LayerMerge flattens one layer into another, recording both layers'
// opacities and the destination transform at merge time.
type LayerMerge struct {
	Other       uint32
	OpacitySrc  float32
	OpacityDst  float32
	Matrix      [16]float32
	Zoom        float32
}

func (LayerMerge) isAction() {}

// DrawImage places an embedded image asset onto the layer.
type DrawImage struct {
	DstCenter [2]float32
	DstSize   [2]float32
	Unused    uint32
	SrcSize   [2]uint32
	ImageID   uint32
}

func (DrawImage) isAction() {}

// UnknownAction05 is an unidentified fixed-size action, kept verbatim
// so a round-trip re-encoder (outside this package's scope) could
// reproduce it.
type UnknownAction05 struct {
	Raw [0x14]byte
}

func (UnknownAction05) isAction() {}

// UnknownAction08 is an unidentified single-word action.
type UnknownAction08 struct {
	Value uint32
}

func (UnknownAction08) isAction() {}
