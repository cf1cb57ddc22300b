// modelview shows a single block model in a window with its textures
// animating.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"mcmodel/internal/config"
	"mcmodel/internal/graphics"
	"mcmodel/internal/graphics/renderables/model"
	"mcmodel/internal/graphics/renderables/wireframe"
	"mcmodel/internal/graphics/renderer"
	"mcmodel/internal/input"
	"mcmodel/internal/logger"
	"mcmodel/internal/profiling"
	"mcmodel/pkg/blockmodel"
	"mcmodel/pkg/mesh"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fs := flag.NewFlagSet("modelview", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: modelview [options] <model>")
		fs.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	closer.Bind(logger.Sync)

	closer.Checked(func() error { return run(cfg, fs.Arg(0)) }, true)
	closer.Close()
}

func run(cfg *config.Config, name string) error {
	log := logger.Named("modelview")

	loader := blockmodel.NewLoader(cfg.Assets.Path, logger.Named("loader"))
	resolver, err := loader.Resolve(name)
	if err != nil {
		return err
	}
	m := mesh.FromResolver(resolver)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Viewer, name)
	if err != nil {
		return err
	}
	defer window.Destroy()

	textures := graphics.NewTextureManager(cfg.Assets.Path, cfg.Animation.FrameTime, logger.Named("textures"))
	defer textures.Delete()
	if err := m.BindTextures(textures.Resolve); err != nil {
		// Unbound slots draw with the missing texture.
		log.Warn("texture unavailable", zap.Error(err))
	}
	m.BindMissing(textures.Missing().State)

	log.Info("model compiled",
		zap.String("model", name),
		zap.Int("vertices", m.Geometry.VertexCount()),
		zap.Int("triangles", m.Geometry.TriangleCount()),
		zap.Int("materials", len(m.Materials)),
		zap.Bool("animated", m.IsAnimated(cfg.AnimationPolicy())),
		zap.Int("period", m.AnimationPeriod()))

	modelRenderer := model.NewModel(m, textures)
	modelRenderer.SpinSpeed = cfg.Viewer.SpinSpeed
	outline := wireframe.NewWireframe()

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(graphics.NewCamera(width, height), modelRenderer, outline)
	if err != nil {
		return err
	}
	defer r.Dispose()
	r.UpdateViewport(width, height)

	limit := 0
	if !cfg.Viewer.VSync {
		limit = cfg.Viewer.FPSLimit
	}
	v := &viewer{
		window:   window,
		renderer: r,
		model:    modelRenderer,
		outline:  outline,
		mesh:     m,
		input:    input.NewInputManager(),
		limiter:  graphics.NewFPSLimiter(limit),
	}
	v.setupInputHandlers()
	v.loop(log)
	return nil
}

func setupWindow(vc config.ViewerConfig, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(vc.Width, vc.Height, "modelview - "+title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	if vc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

type viewer struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	model    *model.Model
	outline  *wireframe.Wireframe
	mesh     *mesh.Mesh
	input    *input.InputManager
	limiter  *graphics.FPSLimiter

	lastX, lastY float64
	scroll       float64
	frame        int
	showProfile  bool
}

func (v *viewer) setupInputHandlers() {
	v.input.Attach(v.window)

	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		v.renderer.UpdateViewport(width, height)
	})
	v.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if v.input.IsActive(input.ActionOrbit) {
			v.renderer.GetCamera().Orbit(float32(v.lastX-xpos)*0.4, float32(ypos-v.lastY)*0.4)
		}
		v.lastX, v.lastY = xpos, ypos
	})
	v.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		v.scroll += yoff
	})
}

// handleInput applies the actions collected since the previous frame.
func (v *viewer) handleInput() {
	cam := v.renderer.GetCamera()
	in := v.input

	if in.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	if in.JustPressed(input.ActionToggleOutline) {
		v.outline.Visible = !v.outline.Visible
	}
	if in.JustPressed(input.ActionTogglePause) {
		v.model.Paused = !v.model.Paused
	}
	if in.JustPressed(input.ActionToggleProfiling) {
		v.showProfile = !v.showProfile
	}

	// Stepping pauses playback so the chosen frame stays visible.
	step := in.Presses(input.ActionNextFrame) - in.Presses(input.ActionPrevFrame)
	if step != 0 {
		v.model.Paused = true
		v.frame += step
		v.mesh.SetAnimationFrame(v.frame)
	}
	if in.JustPressed(input.ActionFirstFrame) {
		v.model.Paused = true
		v.frame = 0
		v.mesh.SetAnimationFrame(0)
	}

	for range in.Presses(input.ActionZoomIn) {
		cam.Zoom(0.9)
	}
	for range in.Presses(input.ActionZoomOut) {
		cam.Zoom(1.1)
	}
	if v.scroll != 0 {
		cam.Zoom(float32(math.Pow(0.9, v.scroll)))
		v.scroll = 0
	}

	in.PostUpdate()
}

func (v *viewer) loop(log *zap.Logger) {
	frames := 0
	lastReport := time.Now()
	lastTime := time.Now()

	for !v.window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		v.handleInput()
		v.renderer.Render(dt)
		frames++

		func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
		v.limiter.Wait()

		if time.Since(lastReport) >= 5*time.Second {
			fields := []zap.Field{zap.Int("frames", frames), zap.Int("animationFrame", v.frame)}
			if v.showProfile {
				fields = append(fields, zap.String("top", profiling.TopN(3)))
			}
			log.Info("frame stats", fields...)
			frames = 0
			lastReport = time.Now()
			profiling.Reset()
		}
	}
}
