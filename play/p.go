// Package play is the sprite layer a sketch talks to: sprites, groups,
// the camera and input devices, on top of a physics world and a canvas.
//
// Nothing here is global. A sketch gets a *P from New, installs a world
// into it, then creates sprites through it.
package play

import (
	"errors"
	"log"

	"github.com/automoto/spriteplay/components"
	cfg "github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/physics"
	"github.com/automoto/spriteplay/render"
	"github.com/automoto/spriteplay/systems"
	"github.com/automoto/spriteplay/systems/factory"
	"github.com/automoto/spriteplay/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoWorld  = errors.New("play: no world installed")
	ErrNoCanvas = errors.New("play: no canvas")
	ErrBadArgs  = errors.New("play: bad sprite arguments")
)

// P is one sketch's sprite layer.
type P struct {
	// AutoUpdate runs UpdateSprites at the end of every frame.
	AutoUpdate bool

	ecs    *ecs.ECS
	canvas *render.Canvas
	world  *components.WorldData

	camera      *Camera
	keyboard    *InputDevice
	mouse       *InputDevice
	controllers *Controllers
	allSprites  *Group

	sprites  map[int]*Sprite
	order    []*Sprite // creation order
	watchers []*watcher
	rules    []overlapRule
	delays   []delay

	frameCount int
}

type Option func(*options)

type options struct {
	keyboard components.InputSource
	mouse    components.InputSource
	gamepads components.GamepadHub
}

// WithKeyboard replaces the ebiten keyboard as the keyboard's source.
func WithKeyboard(src components.InputSource) Option {
	return func(o *options) { o.keyboard = src }
}

// WithMouse replaces the ebiten mouse as the mouse's source.
func WithMouse(src components.InputSource) Option {
	return func(o *options) { o.mouse = src }
}

// WithGamepads replaces ebiten's gamepad list as the controllers' source.
func WithGamepads(hub components.GamepadHub) Option {
	return func(o *options) { o.gamepads = hub }
}

// New creates the sprite layer for canvas. Sprites cannot be created
// until a world is installed.
func New(canvas *render.Canvas, opts ...Option) *P {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keyboard == nil {
		o.keyboard = systems.NewKeyboardSource()
	}
	if o.mouse == nil {
		o.mouse = systems.NewMouseSource()
	}
	if o.gamepads == nil {
		o.gamepads = systems.NewEbitenGamepads()
	}

	p := &P{
		AutoUpdate: true,
		ecs:        ecs.NewECS(donburi.NewWorld()),
		canvas:     canvas,
		sprites:    make(map[int]*Sprite),
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	if canvas != nil {
		w, h = canvas.Width, canvas.Height
	}
	p.camera = &Camera{entry: factory.CreateCamera(p.ecs, w, h)}
	if canvas != nil {
		canvas.SetViewer(p.camera)
	}
	p.keyboard = &InputDevice{entry: factory.CreateInputDevice(p.ecs, "keyboard", o.keyboard)}
	p.mouse = &InputDevice{entry: factory.CreateInputDevice(p.ecs, "mouse", o.mouse)}
	p.camera.mouse = p.mouse
	p.controllers = &Controllers{p: p, hub: o.gamepads}
	p.allSprites = newGroup(p, nil)

	return p
}

// Install wires world into the sprite layer and registers the per-frame
// systems. Installing twice is a no-op.
func (p *P) Install(world *physics.World) error {
	if p.canvas == nil {
		return ErrNoCanvas
	}
	if p.world != nil {
		if p.world.Physics != world {
			log.Printf("Warning: world already installed, ignoring a second one")
		}
		return nil
	}

	entry := factory.CreateWorld(p.ecs, world, p.canvas.Width, p.canvas.Height)
	p.world = components.World.Get(entry)
	world.Filter = p.passes

	p.ecs.AddSystem(systems.UpdatePhysics)
	p.ecs.AddSystem(systems.UpdateLife)
	p.ecs.AddSystem(systems.UpdateMotion)
	p.ecs.AddSystem(systems.UpdateAnimations)
	p.ecs.AddSystem(systems.UpdateObjects)
	p.ecs.AddSystem(systems.UpdateOverlaps)
	p.ecs.AddSystem(systems.UpdateCamera)

	p.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	p.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	return nil
}

// Installed reports whether a world has been installed.
func (p *P) Installed() bool {
	return p.world != nil
}

func (p *P) ECS() *ecs.ECS {
	return p.ecs
}

func (p *P) Canvas() *render.Canvas {
	return p.canvas
}

// CreateCanvas sizes the sketch's canvas to w x h and recenters the
// camera on it. A P made without a canvas gets one.
func (p *P) CreateCanvas(w, h int) *render.Canvas {
	if p.canvas == nil {
		p.canvas = render.CreateCanvas(w, h)
		p.canvas.SetViewer(p.camera)
	}
	p.canvas.Width, p.canvas.Height = w, h

	cd := components.Camera.Get(p.camera.entry)
	cd.Width, cd.Height = float64(w), float64(h)
	cd.X, cd.Y = float64(w)/2, float64(h)/2
	return p.canvas
}

// World returns the world facade. It is nil until Install.
func (p *P) World() *World {
	if p.world == nil {
		return nil
	}
	return &World{p: p}
}

func (p *P) AllSprites() *Group {
	return p.allSprites
}

func (p *P) Camera() *Camera {
	return p.camera
}

func (p *P) Keyboard() *InputDevice {
	return p.keyboard
}

func (p *P) Mouse() *InputDevice {
	return p.mouse
}

// Controllers returns the connected gamepads.
func (p *P) Controllers() *Controllers {
	return p.controllers
}

// FrameCount is the number of frames completed so far.
func (p *P) FrameCount() int {
	return p.frameCount
}

// FPS is the measured frame rate.
func (p *P) FPS() float64 {
	return ebiten.ActualFPS()
}

// NewSprite creates a sprite in AllSprites. See Group.NewSprite for the
// accepted arguments.
func (p *P) NewSprite(args ...any) (*Sprite, error) {
	return p.allSprites.NewSprite(args...)
}

// NewLineSprite creates a line sprite centered on x, y.
func (p *P) NewLineSprite(x, y, length, angle float64, collider ...physics.ColliderType) (*Sprite, error) {
	return p.allSprites.NewLineSprite(x, y, length, angle, collider...)
}

// NewGroup creates a group whose parent is AllSprites.
func (p *P) NewGroup() *Group {
	return p.allSprites.NewGroup()
}

// Sprites returns every live sprite in creation order.
func (p *P) Sprites() []*Sprite {
	return append([]*Sprite(nil), p.order...)
}

// SpriteByID looks up a live sprite.
func (p *P) SpriteByID(id int) (*Sprite, bool) {
	s, ok := p.sprites[id]
	return s, ok
}

// BeginFrame picks up connected gamepads, polls input and clears the
// canvas display list. The host calls it before the sketch's draw.
func (p *P) BeginFrame() {
	p.controllers.sync()
	systems.UpdateInput(p.ecs)
	if p.canvas != nil {
		p.canvas.Clear()
	}
	if p.world != nil {
		p.world.StepsAtFrameStart = p.world.Physics.Steps()
	}
}

// EndFrame steps the world unless the sketch already did, then updates
// sprites when AutoUpdate is on.
func (p *P) EndFrame() {
	if p.world != nil {
		phys := p.world.Physics
		if phys.AutoStep && phys.Steps() == p.world.StepsAtFrameStart {
			phys.Step(0)
		}
	}
	if p.AutoUpdate {
		p.UpdateSprites()
	}
	p.frameCount++
	if p.world != nil {
		p.world.FrameCount = p.frameCount
	}
	p.resolveDelays()
}

// UpdateSprites runs one frame of sprite updates: body sync, life,
// motion, animation, overlaps, camera, then removes expired sprites and
// fires contact callbacks.
func (p *P) UpdateSprites() {
	if p.world == nil {
		return
	}
	p.ecs.Update()

	var expired []*Sprite
	tags.Expired.Each(p.ecs.World, func(e *donburi.Entry) {
		if s, ok := p.sprites[components.Sprite.Get(e).ID]; ok {
			expired = append(expired, s)
		}
	})
	for _, s := range expired {
		s.Remove()
	}

	p.runWatchers()
}

// DrawSprites renders every auto-drawn sprite and the debug overlay.
func (p *P) DrawSprites(screen *ebiten.Image) {
	p.ecs.Draw(screen)
}

type delay struct {
	frame int
	done  chan struct{}
}

// Delay returns a channel closed after frames more frames have ended.
func (p *P) Delay(frames int) <-chan struct{} {
	done := make(chan struct{})
	if frames <= 0 {
		close(done)
		return done
	}
	p.delays = append(p.delays, delay{frame: p.frameCount + frames, done: done})
	return done
}

func (p *P) resolveDelays() {
	kept := p.delays[:0]
	for _, d := range p.delays {
		if p.frameCount >= d.frame {
			close(d.done)
			continue
		}
		kept = append(kept, d)
	}
	p.delays = kept
}

func (p *P) requireWorld() error {
	if p.world == nil {
		return ErrNoWorld
	}
	return nil
}
