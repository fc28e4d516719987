package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelforge/internal/atlas"
	"voxelforge/internal/config"
	"voxelforge/internal/graphics"
	"voxelforge/internal/meshing"
	"voxelforge/internal/profiling"
	"voxelforge/internal/registry"
	"voxelforge/internal/world"
)

func init() { runtime.LockOSThread() }

const (
	winW = 1280
	winH = 720

	vertShaderPath = "assets/shaders/blocks/main.vert"
	fragShaderPath = "assets/shaders/blocks/main.frag"
	texturesDir    = "assets/textures/blocks"
	assetsDir      = "assets"
)

func main() {
	seed := flag.Int64("seed", 1337, "world generation seed")
	radius := flag.Int("radius", 6, "view radius in chunks")
	workers := flag.Int("workers", 0, "mesh workers (0 = NumCPU)")
	flag.Parse()

	config.SetViewRadius(*radius)
	if *workers > 0 {
		config.SetMeshWorkers(*workers)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "voxelforge", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		panic(err)
	}

	glfw.SwapInterval(1)

	reg, err := registry.LoadFromAssets(assetsDir)
	if err != nil {
		log.Fatalf("failed to load block registry: %v", err)
	}

	var a *atlas.Atlas
	func() {
		defer profiling.Track("atlas.Build")()
		a, err = atlas.Build(reg, atlas.NewDirProvider(texturesDir), atlas.DefaultCellsX, atlas.DefaultCellsY)
	}()
	if err != nil {
		log.Fatalf("failed to build texture atlas: %v", err)
	}

	atlasTex, err := graphics.UploadAtlasTexture(a.Image())
	if err != nil {
		log.Fatalf("failed to upload atlas: %v", err)
	}

	shader, err := graphics.NewShader(vertShaderPath, fragShaderPath)
	if err != nil {
		log.Fatalf("failed to load shaders: %v", err)
	}

	w := world.New(*seed)
	pool := meshing.NewWorkerPool(a, config.GetMeshWorkers(), config.GetMeshQueueSize(), *seed)
	defer pool.Shutdown()

	// Load the view square and queue every chunk for meshing. Chunks at the
	// rim mesh against their loaded neighbors; the outermost ring of
	// unloaded chunks counts as solid so the rim shows no wall of side
	// faces.
	r := config.GetViewRadius()
	results := make(chan meshing.MeshResult, (2*r+1)*(2*r+1))
	pending := 0
	func() {
		defer profiling.Track("world.LoadChunks")()
		for cx := -r; cx <= r; cx++ {
			for cz := -r; cz <= r; cz++ {
				w.LoadChunk(world.ChunkCoord{X: cx, Z: cz})
			}
		}
	}()
	for cx := -r; cx <= r; cx++ {
		for cz := -r; cz <= r; cz++ {
			pool.SubmitJobBlocking(meshing.MeshJob{
				Neighborhood: w,
				Chunk:        w.GetChunk(world.ChunkCoord{X: cx, Z: cz}),
				ResultChan:   results,
			})
			pending++
		}
	}

	meshes := make(map[world.ChunkCoord]*graphics.ChunkMesh)
	defer func() {
		for _, cm := range meshes {
			if cm != nil {
				cm.Dispose()
			}
		}
	}()

	camera := graphics.NewCamera(winW, winH)
	camera.Position = mgl32.Vec3{0, float32(w.HeightAt(0, 0)) + 12, 0}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	lastX, lastY := window.GetCursorPos()
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		camera.Rotate(float32(x-lastX)*0.1, float32(lastY-y)*0.1)
		lastX, lastY = x, y
	})
	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.71, 0.92, 1.0)

	shader.Use()
	shader.SetInt("atlasTex", 0)
	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	shader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	lastFrame := glfw.GetTime()
	lastReport := time.Now()
	frames := 0

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		moveCamera(window, camera, dt)

		// Drain finished meshes; uploads must happen on the GL thread
	drain:
		for pending > 0 {
			select {
			case res := <-results:
				pending--
				if cm := graphics.UploadMesh(res.Mesh); cm != nil {
					meshes[res.Coord] = cm
				}
			default:
				break drain
			}
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		proj := camera.GetProjectionMatrix()
		view := camera.GetViewMatrix()
		shader.SetMatrix4("proj", &proj[0])
		shader.SetMatrix4("view", &view[0])

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, atlasTex)

		for _, cm := range meshes {
			cm.Draw()
		}

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if time.Since(lastReport) >= 5*time.Second {
			log.Printf("fps=%d meshes=%d queued=%d hot: %s",
				frames/5, len(meshes), pool.QueueLength(), profiling.TopN(3))
			profiling.Reset()
			frames = 0
			lastReport = time.Now()
		}
	}
}

func moveCamera(window *glfw.Window, camera *graphics.Camera, dt float32) {
	speed := float32(24.0) * dt
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		speed *= 4
	}
	front := camera.Front()
	right := camera.Right()
	if window.GetKey(glfw.KeyW) == glfw.Press {
		camera.Position = camera.Position.Add(front.Mul(speed))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		camera.Position = camera.Position.Sub(front.Mul(speed))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		camera.Position = camera.Position.Add(right.Mul(speed))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		camera.Position = camera.Position.Sub(right.Mul(speed))
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		camera.Position = camera.Position.Add(mgl32.Vec3{0, speed, 0})
	}
	if window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		camera.Position = camera.Position.Sub(mgl32.Vec3{0, speed, 0})
	}
}
