package scene

import (
	"fmt"

	"rgba-canvas/internal/logging"
	"rgba-canvas/internal/raster"
	"rgba-canvas/internal/sprite"
)

// Render draws the scene onto a new buffer. sprites may be nil when the
// scene has no blit ops.
func Render(s *Scene, sprites sprite.Resolver) (*raster.FrameBuffer, error) {
	fb := raster.NewFrameBuffer(s.Width, s.Height)
	fb.Clear(uint8(s.Clear))
	if s.Alpha != nil {
		fb.SetAlpha(uint8(*s.Alpha))
	}

	c := raster.NewCanvas(fb)
	for i := range s.Ops {
		if err := apply(c, &s.Ops[i], sprites); err != nil {
			return nil, fmt.Errorf("scene: %s: op %d (%s): %w", s.Name, i, s.Ops[i].Kind, err)
		}
	}

	logging.Logger().Debug("scene rendered", "name", s.Name, "ops", len(s.Ops))
	return fb, nil
}

func apply(c *raster.Canvas, op *Op, sprites sprite.Resolver) error {
	if op.Color != nil && op.Kind != OpBlit {
		c.SetPenColor(uint8(op.Color[0]), uint8(op.Color[1]), uint8(op.Color[2]), uint8(op.Color[3]))
	}
	if op.PenWidth != 0 {
		c.SetPenWidth(op.PenWidth)
	}

	p := op.Points
	switch op.Kind {
	case OpPen:
		// Color and width were applied above.
	case OpClip:
		c.SetClip(op.Clip[0], op.Clip[1], op.Clip[2], op.Clip[3])
	case OpResetClip:
		c.ResetClip()
	case OpLine:
		for i := 1; i < len(p); i++ {
			c.LineSegment(p[i-1][0], p[i-1][1], p[i][0], p[i][1])
		}
	case OpRect:
		c.Rectangle(p[0][0], p[0][1], p[1][0], p[1][1])
	case OpTriangle:
		c.Triangle(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1])
	case OpQuad:
		c.Quad(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1], p[3][0], p[3][1])
	case OpCircle:
		c.Circle(p[0][0], p[0][1], op.Radius)
	case OpEllipse:
		c.Ellipse(p[0][0], p[0][1], op.RX, op.RY)
	case OpArc:
		c.Arc(p[0][0], p[0][1], p[1][0], p[1][1], op.Angle)
	case OpRoundedRect:
		c.RoundedRectangle(p[0][0], p[0][1], p[1][0], p[1][1], op.Radius)
	case OpFillRect:
		c.FillRectangle(p[0][0], p[0][1], p[1][0], p[1][1])
	case OpFillCircle:
		c.FillCircle(p[0][0], p[0][1], op.Radius)
	case OpFillArc:
		c.FillArc(p[0][0], p[0][1], p[1][0], p[1][1], op.Angle)
	case OpFillRoundedRect:
		c.FillRoundedRectangle(p[0][0], p[0][1], p[1][0], p[1][1], op.Radius)
	case OpPlot:
		for _, pt := range p {
			c.PlotPenPixel(pt[0], pt[1])
		}
	case OpBlit:
		if sprites == nil {
			return fmt.Errorf("no sprite source for %q", op.Sprite)
		}
		src := sprites.Resolve(op.Sprite)
		if src == nil {
			return fmt.Errorf("sprite %q not found", op.Sprite)
		}
		sx, sy, w, h := 0, 0, src.Width, src.Height
		if op.Src != nil {
			sx, sy, w, h = op.Src[0], op.Src[1], op.Src[2], op.Src[3]
		}
		c.Blit(src, sx, sy, p[0][0], p[0][1], w, h)
	default:
		return fmt.Errorf("unknown op")
	}
	return nil
}
