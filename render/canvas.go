// Package render records what a sketch draws during a frame and replays
// it onto the screen.
package render

import (
	"image/color"

	cfg "github.com/automoto/spriteplay/config"
)

type CommandKind int

const (
	BackgroundCmd CommandKind = iota
	RectCmd
	CircleCmd
	LineCmd
	TextCmd
)

// Command is one recorded drawing call with the drawing state it was
// made in.
type Command struct {
	Kind         CommandKind
	X, Y, W, H   float64 // rects use the top-left corner, circles the center and W as diameter
	X2, Y2       float64
	Fill         color.RGBA
	Stroke       color.RGBA
	StrokeWeight float64
	NoFill       bool
	NoStroke     bool
	Text         string
	TextSize     float64

	// Camera is set when the call was made with the camera on; View is
	// the camera transform at that moment.
	Camera bool
	View   View
}

// ToScreen maps a recorded point onto the screen.
func (cmd Command) ToScreen(x, y float64) (float64, float64) {
	if !cmd.Camera {
		return x, y
	}
	return cmd.View.ToScreen(x, y)
}

// Scale is the factor recorded sizes are drawn at.
func (cmd Command) Scale() float64 {
	if !cmd.Camera {
		return 1
	}
	return cmd.View.Zoom
}

// View is a camera transform: X, Y is the world point shown at the center
// of a Width x Height viewport, magnified by Zoom.
type View struct {
	X, Y          float64
	Zoom          float64
	Width, Height float64
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.X)*v.Zoom + v.Width/2, (y-v.Y)*v.Zoom + v.Height/2
}

// Viewer supplies the camera drawing calls are recorded under. The
// boolean is false while the camera is off.
type Viewer interface {
	View() (View, bool)
}

// Canvas is the sketch's drawing surface. Drawing calls are kept as a
// display list that the host clears at the start of every frame.
type Canvas struct {
	Width, Height int
	Parent        string

	fill     color.RGBA
	stroke   color.RGBA
	weight   float64
	textSize float64
	noFill   bool
	noStroke bool

	viewer   Viewer
	commands []Command
}

// CreateCanvas creates a w x h canvas with default drawing state.
func CreateCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:    w,
		Height:   h,
		fill:     cfg.White,
		stroke:   cfg.Black,
		weight:   1,
		textSize: cfg.Sprite.TextSize,
	}
}

// SetParent attaches the canvas to the container with the given id.
func (c *Canvas) SetParent(id string) {
	c.Parent = id
}

// SetViewer makes later drawing calls record v's transform whenever v
// reports the camera on.
func (c *Canvas) SetViewer(v Viewer) {
	c.viewer = v
}

// Background fills the whole canvas. It accepts the same values as
// ParseColor.
func (c *Canvas) Background(v ...float64) error {
	clr, err := ParseColor(v...)
	if err != nil {
		return err
	}
	c.BackgroundColor(clr)
	return nil
}

func (c *Canvas) BackgroundColor(clr color.Color) {
	c.commands = append(c.commands, Command{Kind: BackgroundCmd, Fill: toRGBA(clr)})
}

func (c *Canvas) Fill(v ...float64) error {
	clr, err := ParseColor(v...)
	if err != nil {
		return err
	}
	c.fill, c.noFill = clr, false
	return nil
}

func (c *Canvas) NoFill() {
	c.noFill = true
}

func (c *Canvas) Stroke(v ...float64) error {
	clr, err := ParseColor(v...)
	if err != nil {
		return err
	}
	c.stroke, c.noStroke = clr, false
	return nil
}

func (c *Canvas) NoStroke() {
	c.noStroke = true
}

func (c *Canvas) StrokeWeight(w float64) {
	c.weight = w
}

func (c *Canvas) TextSize(size float64) {
	c.textSize = size
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.add(Command{Kind: RectCmd, X: x, Y: y, W: w, H: h})
}

func (c *Canvas) Circle(x, y, d float64) {
	c.add(Command{Kind: CircleCmd, X: x, Y: y, W: d, H: d})
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.add(Command{Kind: LineCmd, X: x1, Y: y1, X2: x2, Y2: y2})
}

// Text draws s with its baseline starting at x, y.
func (c *Canvas) Text(s string, x, y float64) {
	c.add(Command{Kind: TextCmd, X: x, Y: y, Text: s})
}

func (c *Canvas) add(cmd Command) {
	cmd.Fill = c.fill
	cmd.Stroke = c.stroke
	cmd.StrokeWeight = c.weight
	cmd.NoFill = c.noFill
	cmd.NoStroke = c.noStroke
	cmd.TextSize = c.textSize
	if c.viewer != nil {
		cmd.View, cmd.Camera = c.viewer.View()
	}
	c.commands = append(c.commands, cmd)
}

// Commands returns the calls recorded since the last Clear.
func (c *Canvas) Commands() []Command {
	return c.commands
}

// Clear drops the display list. Drawing state is kept across frames.
func (c *Canvas) Clear() {
	c.commands = c.commands[:0]
}

// LastBackground returns the color of the latest Background call this
// frame.
func (c *Canvas) LastBackground() (color.RGBA, bool) {
	for i := len(c.commands) - 1; i >= 0; i-- {
		if c.commands[i].Kind == BackgroundCmd {
			return c.commands[i].Fill, true
		}
	}
	return color.RGBA{}, false
}

func toRGBA(clr color.Color) color.RGBA {
	if rgba, ok := clr.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
