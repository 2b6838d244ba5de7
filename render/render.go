package render

import (
	"errors"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/andthum/transfer-Li/insertion"
	"github.com/andthum/transfer-Li/simbox"
)

// ErrEmptyBox indicates a plot without usable box dimensions.
var ErrEmptyBox = errors.New("render: box has no in-plane extent")

// Plot is everything one diagnostic image shows. Positions are in
// Ångström; only x and y are drawn.
type Plot struct {
	// Box supplies the drawn cell outline and the image aspect ratio.
	Box simbox.Box
	// Vertices are the lattice vertex positions.
	Vertices []simbox.Vec
	// Faces are the derived hexagon face centers.
	Faces []simbox.Vec
	// Suitable are the annotated suitable sites; the best one is drawn
	// highlighted.
	Suitable []insertion.Site
}

// Pixels per Ångström; a typical electrode cell of ~30 Å then renders
// around 600 px wide.
const scale = 20.0

const margin = 24.0

// PNG renders the plot to a PNG file at path.
func PNG(path string, p Plot) error {
	lengths := p.Box.Lengths()
	lx, ly := lengths[simbox.X], lengths[simbox.Y]
	if lx <= 0 || ly <= 0 {
		return fmt.Errorf("%w: lx=%g ly=%g", ErrEmptyBox, lx, ly)
	}

	w := int(lx*scale + 2*margin)
	h := int(ly*scale + 2*margin)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Image y runs down; flip so box y runs up.
	px := func(v simbox.Vec) (float64, float64) {
		return margin + v[simbox.X]*scale, float64(h) - margin - v[simbox.Y]*scale
	}

	// Cell outline.
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, lx*scale, ly*scale)
	dc.Stroke()

	// Lattice vertices.
	dc.SetRGB(0.3, 0.3, 0.3)
	for _, v := range p.Vertices {
		x, y := px(v)
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}

	// Face centers.
	dc.SetRGB(0.2, 0.4, 0.8)
	for _, f := range p.Faces {
		x, y := px(f)
		dc.DrawCircle(x, y, 4)
		dc.Fill()
	}

	// Suitable sites over the face centers, best site ringed.
	for _, s := range p.Suitable {
		x, y := px(s.Pos)
		if s.Best {
			dc.SetRGB(0.85, 0.15, 0.1)
			dc.DrawCircle(x, y, 6)
			dc.Fill()
			dc.SetLineWidth(2)
			dc.DrawCircle(x, y, 10)
			dc.Stroke()
			continue
		}
		dc.SetRGB(0.95, 0.6, 0.1)
		dc.DrawCircle(x, y, 5)
		dc.Fill()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	return nil
}
