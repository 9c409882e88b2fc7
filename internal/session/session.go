// Package session holds the viewport, the model and the view of one viewer
// and applies camera commands between frames.
package session

import (
	"github.com/go-gl/mathgl/mgl64"

	"sphereflake/internal/geom"
	"sphereflake/internal/log"
	"sphereflake/internal/model"
	"sphereflake/internal/stencil"
	"sphereflake/internal/view"
	"sphereflake/internal/viewport"
)

// The pose the viewer starts in and returns to on Reset.
var (
	StartEye  = mgl64.Vec3{12, 0, 0}
	StartView = mgl64.Vec3{-1, 0, 0}
	StartUp   = mgl64.Vec3{0, 0, 1}
)

// StartFOV is the initial vertical field of view in degrees.
const StartFOV = 45.0

// Command is a discrete edit applied between frames.
type Command int

const (
	StencilGold Command = iota
	StencilPierrot
	StencilVitro
	OrbitLeft
	OrbitRight
	OrbitUp
	OrbitDown
	YawLeft
	YawRight
	PitchUp
	PitchDown
	MoveForward
	MoveBackward
	NarrowFOV
	WidenFOV
	Reset

	CommandCount
)

var commandNames = [CommandCount]string{
	"stencil-gold", "stencil-pierrot", "stencil-vitro",
	"orbit-left", "orbit-right", "orbit-up", "orbit-down",
	"yaw-left", "yaw-right", "pitch-up", "pitch-down",
	"move-forward", "move-backward", "narrow-fov", "widen-fov", "reset",
}

func (c Command) String() string {
	if c < 0 || c >= CommandCount {
		return "unknown"
	}
	return commandNames[c]
}

// Session wires a fractal, a viewport and a view over one backend.
type Session struct {
	Viewport *viewport.Viewport
	Fractal  *model.Fractal
	View     *view.View

	logger log.Logger
}

// New creates a session in the start pose drawing into backend.
func New(backend view.Backend, width, height int, st view.Stencil, opts ...model.Option) *Session {
	vp := viewport.New(StartEye, StartView, StartUp, StartFOV, geom.Degrees, width, height)
	f := model.NewFractal(opts...)
	return &Session{
		Viewport: vp,
		Fractal:  f,
		View:     view.New(f, vp, backend, st),
		logger:   log.New("session"),
	}
}

// Step returns the camera step in degrees, proportional to the eye distance
// from the model origin.
func (s *Session) Step() float64 {
	return 0.1 * s.Viewport.Eye().Len() / 3
}

// Apply performs cmd. It reports whether cmd was recognized.
func (s *Session) Apply(cmd Command) bool {
	vp := s.Viewport
	step := s.Step()

	switch cmd {
	case StencilGold:
		s.View.SetStencil(stencil.Gold)
	case StencilPierrot:
		s.View.SetStencil(stencil.Pierrot)
	case StencilVitro:
		s.View.SetStencil(stencil.Vitro)
	case OrbitLeft:
		vp.OrbitHorizontal(step, geom.Degrees)
	case OrbitRight:
		vp.OrbitHorizontal(-step, geom.Degrees)
	case OrbitUp:
		vp.OrbitVertical(step, geom.Degrees)
	case OrbitDown:
		vp.OrbitVertical(-step, geom.Degrees)
	case YawLeft:
		vp.Yaw(step, geom.Degrees)
	case YawRight:
		vp.Yaw(-step, geom.Degrees)
	case PitchUp:
		vp.Pitch(step, geom.Degrees)
	case PitchDown:
		vp.Pitch(-step, geom.Degrees)
	case MoveForward:
		vp.MoveInViewDir(step / 10)
	case MoveBackward:
		vp.MoveInViewDir(-step / 10)
	case NarrowFOV:
		vp.AddFOV(-1, geom.Degrees)
	case WidenFOV:
		vp.AddFOV(1, geom.Degrees)
	case Reset:
		vp.Reset(StartEye, StartView, StartUp, StartFOV, geom.Degrees)
	default:
		return false
	}
	s.logger.Debugf("%v: eye %v fov %.2f", cmd, vp.Eye(), mgl64.RadToDeg(vp.FOV()))
	return true
}

// Resize updates the viewport extents.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Viewport.SetExtents(width, height)
}

// Frame traverses and draws the model once.
func (s *Session) Frame() view.Stats {
	return s.View.Display()
}

// Close releases every node of the model.
func (s *Session) Close() {
	s.Fractal.Close()
}
