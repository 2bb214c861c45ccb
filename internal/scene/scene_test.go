package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgba-canvas/internal/raster"
)

const badgeJSON = `{
  "name": "badge",
  "width": 32,
  "height": 24,
  "clear": 0,
  "alpha": 255,
  "ops": [
    {"op": "pen", "color": [255, 0, 0, 255], "pen_width": 2},
    {"op": "rect", "points": [[1, 1], [30, 22]]},
    {"op": "fill_circle", "points": [[16, 12]], "radius": 4},
    {"op": "arc", "points": [[16, 12], [24, 12]], "angle": 1.57},
    {"op": "clip", "clip": [0, 0, 15, 23]},
    {"op": "line", "points": [[0, 0], [31, 23], [0, 23]]},
    {"op": "reset_clip"},
    {"op": "blit", "sprite": "dot", "points": [[2, 2]], "src": [0, 0, 1, 1]}
  ]
}`

const badgeTOML = `
name = "badge"
width = 32
height = 24
clear = 0
alpha = 255

[[ops]]
op = "pen"
color = [255, 0, 0, 255]
pen_width = 2

[[ops]]
op = "rect"
points = [[1, 1], [30, 22]]

[[ops]]
op = "fill_circle"
points = [[16, 12]]
radius = 4

[[ops]]
op = "arc"
points = [[16, 12], [24, 12]]
angle = 1.57

[[ops]]
op = "clip"
clip = [0, 0, 15, 23]

[[ops]]
op = "line"
points = [[0, 0], [31, 23], [0, 23]]

[[ops]]
op = "reset_clip"

[[ops]]
op = "blit"
sprite = "dot"
points = [[2, 2]]
src = [0, 0, 1, 1]
`

type mapResolver map[string]*raster.FrameBuffer

func (m mapResolver) Resolve(name string) *raster.FrameBuffer { return m[name] }

func pixel(fb *raster.FrameBuffer, x, y int) [4]uint8 {
	r, g, b, a := fb.GetPixel(x, y)
	return [4]uint8{r, g, b, a}
}

func TestParseJSONAndTOMLAgree(t *testing.T) {
	fromJSON, err := Parse([]byte(badgeJSON), ".json")
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(badgeTOML), ".TOML")
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromTOML)
	assert.Equal(t, "badge", fromJSON.Name)
	require.Len(t, fromJSON.Ops, 8)
	assert.Equal(t, OpBlit, fromJSON.Ops[7].Kind)
	assert.Equal(t, []int{0, 0, 1, 1}, fromJSON.Ops[7].Src)
	require.NotNil(t, fromJSON.Alpha)
	assert.Equal(t, 255, *fromJSON.Alpha)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"size", `{"width": 0, "height": 4}`, "invalid size"},
		{"too large", `{"width": 4000000000, "height": 4000000000}`, "exceeds 67108864 pixels"},
		{"too large narrow", `{"width": 67108865, "height": 1}`, "exceeds"},
		{"name separator", `{"name": "../../x", "width": 1, "height": 1}`, "invalid name"},
		{"name backslash", `{"name": "a\\b", "width": 1, "height": 1}`, "invalid name"},
		{"name dotdot", `{"name": "..", "width": 1, "height": 1}`, "invalid name"},
		{"clear", `{"width": 1, "height": 1, "clear": 256}`, "clear value"},
		{"alpha", `{"width": 1, "height": 1, "alpha": -1}`, "alpha value"},
		{"unknown op", `{"width": 1, "height": 1, "ops": [{"op": "spiral"}]}`, "op 0 (spiral): unknown op"},
		{"points", `{"width": 1, "height": 1, "ops": [{"op": "rect", "points": [[0, 0]]}]}`, "want 2 points, got 1"},
		{"line points", `{"width": 1, "height": 1, "ops": [{"op": "line", "points": [[0, 0]]}]}`, "want at least 2 points"},
		{"coords", `{"width": 1, "height": 1, "ops": [{"op": "plot", "points": [[0]]}]}`, "point 0 has 1 coordinates"},
		{"color", `{"width": 1, "height": 1, "ops": [{"op": "pen", "color": [1, 2, 3]}]}`, "color needs 4 channels"},
		{"color range", `{"width": 1, "height": 1, "ops": [{"op": "pen", "color": [1, 2, 3, 300]}]}`, "out of range"},
		{"clip", `{"width": 1, "height": 1, "ops": [{"op": "clip", "clip": [1, 2]}]}`, "clip needs 4 values"},
		{"radius", `{"width": 1, "height": 1, "ops": [{"op": "circle", "points": [[0, 0]], "radius": -2}]}`, "negative radius"},
		{"ellipse", `{"width": 1, "height": 1, "ops": [{"op": "ellipse", "points": [[0, 0]], "rx": -1}]}`, "negative semi-axis"},
		{"sprite", `{"width": 1, "height": 1, "ops": [{"op": "blit", "points": [[0, 0]]}]}`, "missing sprite"},
		{"src", `{"width": 1, "height": 1, "ops": [{"op": "blit", "sprite": "a", "points": [[0, 0]], "src": [1]}]}`, "src needs 4 values"},
		{"unknown field", `{"width": 1, "height": 1, "colour": 3}`, "parse json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), ".json")
			assert.ErrorContains(t, err, tt.want)
		})
	}

	s, err := Parse([]byte(`{"name": "v1.2", "width": 8192, "height": 8192}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, "v1.2", s.Name)

	_, err = Parse([]byte("width = 1\nheight = 1\nbogus = 2\n"), ".toml")
	assert.ErrorContains(t, err, "parse toml")

	_, err = Parse([]byte("{}"), ".yaml")
	assert.ErrorContains(t, err, "unknown scene format")
}

func TestRenderHorizontalLine(t *testing.T) {
	s, err := Parse([]byte(`{"width": 10, "height": 10, "ops": [
		{"op": "line", "color": [255, 0, 0, 255], "points": [[0, 0], [9, 0]]}
	]}`), ".json")
	require.NoError(t, err)

	fb, err := Render(s, nil)
	require.NoError(t, err)
	for x := 0; x < 10; x++ {
		assert.Equal(t, [4]uint8{255, 0, 0, 255}, pixel(fb, x, 0))
		assert.Equal(t, [4]uint8{}, pixel(fb, x, 1))
	}
}

func TestRenderClipAndAlpha(t *testing.T) {
	s, err := Parse([]byte(`{"width": 10, "height": 10, "clear": 0, "alpha": 255, "ops": [
		{"op": "clip", "clip": [2, 2, 7, 7]},
		{"op": "line", "color": [0, 255, 0, 255], "points": [[0, 0], [9, 9]]}
	]}`), ".json")
	require.NoError(t, err)

	fb, err := Render(s, nil)
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixel(fb, 0, 0))
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, pixel(fb, 2, 2))
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, pixel(fb, 7, 7))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixel(fb, 9, 9))
}

func TestRenderBlitKeepsPen(t *testing.T) {
	dot := raster.NewFrameBuffer(2, 2)
	dot.Clear(255)

	s, err := Parse([]byte(`{"width": 6, "height": 6, "ops": [
		{"op": "pen", "color": [0, 0, 255, 255]},
		{"op": "blit", "sprite": "dot", "points": [[3, 3]]},
		{"op": "plot", "points": [[0, 0]]}
	]}`), ".json")
	require.NoError(t, err)

	fb, err := Render(s, mapResolver{"dot": dot})
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, pixel(fb, 3, 3))
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, pixel(fb, 4, 4))
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, pixel(fb, 0, 0))
}

func TestRenderBlitErrors(t *testing.T) {
	s, err := Parse([]byte(`{"name": "x", "width": 4, "height": 4, "ops": [
		{"op": "blit", "sprite": "ghost", "points": [[0, 0]]}
	]}`), ".json")
	require.NoError(t, err)

	_, err = Render(s, mapResolver{})
	assert.ErrorContains(t, err, `scene: x: op 0 (blit): sprite "ghost" not found`)

	_, err = Render(s, nil)
	assert.ErrorContains(t, err, "no sprite source")
}

func TestRenderFullBadge(t *testing.T) {
	s, err := Parse([]byte(badgeTOML), ".toml")
	require.NoError(t, err)

	dot := raster.NewFrameBuffer(1, 1)
	dot.SetPixel(0, 0, 0, 255, 0, 255)

	fb, err := Render(s, mapResolver{"dot": dot})
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, pixel(fb, 16, 12))
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, pixel(fb, 2, 2))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixel(fb, 20, 5))
}

func TestLoadDefaultsNameToStem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 2, "height": 2}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sunset", s.Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "scene: read")

	assert.True(t, IsSceneFile("a/b.TOML"))
	assert.False(t, IsSceneFile("a/b.png"))
}
