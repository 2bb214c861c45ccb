package scene

// Scene describes one image: buffer size, initial fill and a list of
// drawing operations applied in order.
type Scene struct {
	Name   string `json:"name" toml:"name"`
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
	Clear  int    `json:"clear" toml:"clear"`           // byte written to every channel
	Alpha  *int   `json:"alpha,omitempty" toml:"alpha"` // applied after Clear when set
	Ops    []Op   `json:"ops" toml:"ops"`
}

// Op is one drawing operation. Which fields matter depends on Kind.
type Op struct {
	Kind     string  `json:"op" toml:"op"`
	Points   [][]int `json:"points,omitempty" toml:"points"`
	Radius   int     `json:"radius,omitempty" toml:"radius"`
	RX       int     `json:"rx,omitempty" toml:"rx"`
	RY       int     `json:"ry,omitempty" toml:"ry"`
	Angle    float32 `json:"angle,omitempty" toml:"angle"`
	Color    []int   `json:"color,omitempty" toml:"color"`
	PenWidth int     `json:"pen_width,omitempty" toml:"pen_width"`
	Clip     []int   `json:"clip,omitempty" toml:"clip"`
	Sprite   string  `json:"sprite,omitempty" toml:"sprite"`
	Src      []int   `json:"src,omitempty" toml:"src"` // x, y, w, h within the sprite
}

// Operation kinds.
const (
	OpPen             = "pen"
	OpClip            = "clip"
	OpResetClip       = "reset_clip"
	OpLine            = "line"
	OpRect            = "rect"
	OpTriangle        = "triangle"
	OpQuad            = "quad"
	OpCircle          = "circle"
	OpEllipse         = "ellipse"
	OpArc             = "arc"
	OpRoundedRect     = "rounded_rect"
	OpFillRect        = "fill_rect"
	OpFillCircle      = "fill_circle"
	OpFillArc         = "fill_arc"
	OpFillRoundedRect = "fill_rounded_rect"
	OpPlot            = "plot"
	OpBlit            = "blit"
)

// pointRule is the accepted number of points for an op kind. max < 0 means
// unbounded.
type pointRule struct{ min, max int }

var pointRules = map[string]pointRule{
	OpPen:             {0, 0},
	OpClip:            {0, 0},
	OpResetClip:       {0, 0},
	OpLine:            {2, -1},
	OpRect:            {2, 2},
	OpTriangle:        {3, 3},
	OpQuad:            {4, 4},
	OpCircle:          {1, 1},
	OpEllipse:         {1, 1},
	OpArc:             {2, 2},
	OpRoundedRect:     {2, 2},
	OpFillRect:        {2, 2},
	OpFillCircle:      {1, 1},
	OpFillArc:         {2, 2},
	OpFillRoundedRect: {2, 2},
	OpPlot:            {1, -1},
	OpBlit:            {1, 1},
}
