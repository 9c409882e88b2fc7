package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli"
	"github.com/xlab/closer"

	"sphereflake/internal/config"
	"sphereflake/internal/graphics"
	"sphereflake/internal/input"
	"sphereflake/internal/profiling"
	"sphereflake/internal/session"
	"sphereflake/internal/stencil"
)

const windowTitle = "SphereFlake"

// Viewer manages the interactive window loop
type Viewer struct {
	window   *glfw.Window
	renderer *graphics.SphereRenderer
	session  *session.Session
	input    *input.InputManager

	fpsLimiter *FPSLimiter
	shotsDir   string

	// Timing
	frames           int
	lastFPSCheckTime time.Time
}

func runViewer(ctx *cli.Context) error {
	setupLogging(ctx)
	applySettings(ctx)
	config.SetFPSLimit(ctx.Int("fps"))

	st, err := stencil.ByName(ctx.GlobalString("stencil"))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	width, height := config.GetWindowSize()
	window, err := setupWindow(width, height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	logger.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	fbWidth, fbHeight := window.GetFramebufferSize()
	r := graphics.NewSphereRenderer(fbWidth, fbHeight)
	if err := r.Init(context.Background()); err != nil {
		return err
	}
	defer r.Dispose()

	s := session.New(r, width, height, st)
	closer.Bind(s.Close)

	v := &Viewer{
		window:           window,
		renderer:         r,
		session:          s,
		input:            input.NewInputManager(),
		fpsLimiter:       NewFPSLimiter(),
		shotsDir:         ctx.String("shots"),
		lastFPSCheckTime: time.Now(),
	}
	v.setupCallbacks()
	v.Run()
	return nil
}

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}

func (v *Viewer) setupCallbacks() {
	v.input.SetKeyCallback(v.window)

	// Framebuffer size callback
	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		v.renderer.SetViewport(fbWidth, fbHeight)
		winW, winH := w.GetSize()
		v.session.Resize(winW, winH)
	})

	// Refresh callback (called during window resize to prevent visual glitches)
	v.window.SetRefreshCallback(func(w *glfw.Window) {
		v.render()
		w.SwapBuffers()
	})
}

// Run drives frames until the window is closed
func (v *Viewer) Run() {
	for !v.window.ShouldClose() {
		v.tick()
	}
}

func (v *Viewer) tick() {
	profiling.ResetFrame()

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	screenshot := false
	for _, a := range v.input.Drain() {
		switch a {
		case input.ActionQuit:
			v.window.SetShouldClose(true)
			return
		case input.ActionScreenshot:
			screenshot = true
		default:
			if cmd, ok := a.Command(); ok {
				v.session.Apply(cmd)
			}
		}
	}

	v.render()

	// The back buffer still holds the frame before the swap
	if screenshot {
		v.saveScreenshot()
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()

	v.frames++
	if time.Since(v.lastFPSCheckTime) >= time.Second {
		logger.Infof("FPS: %d produced %d/%d glfw %v %s", v.frames, v.session.Fractal.Produced(), v.session.Fractal.Budget(),
			profiling.SumWithPrefix("glfw."), profiling.TopN(3))
		v.frames = 0
		v.lastFPSCheckTime = time.Now()
	}

	v.fpsLimiter.Wait()
}

func (v *Viewer) render() {
	v.renderer.BeginFrame(v.session.Viewport)
	v.session.Frame()
}

func (v *Viewer) saveScreenshot() {
	name := fmt.Sprintf("sphereflake-%s.bmp", time.Now().Format("20060102-150405.000"))
	path := filepath.Join(v.shotsDir, name)
	if err := v.renderer.Screenshot(path); err != nil {
		logger.Errorf("screenshot: %v", err)
		return
	}
	logger.Noticef("saved %s", path)
}
