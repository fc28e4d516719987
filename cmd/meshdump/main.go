package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"voxelforge/internal/atlas"
	"voxelforge/internal/config"
	"voxelforge/internal/meshing"
	"voxelforge/internal/profiling"
	"voxelforge/internal/registry"
	"voxelforge/internal/world"
)

// meshdump builds terrain chunks headlessly and writes the packed atlas as a
// PNG plus one Wavefront OBJ per chunk. Useful for inspecting mesher output
// in any model viewer without a GL context.

const (
	texturesDir = "assets/textures/blocks"
	assetsDir   = "assets"
)

func main() {
	seed := flag.Int64("seed", 1337, "world generation seed")
	radius := flag.Int("radius", 1, "chunk radius around the origin")
	outDir := flag.String("out", "meshdump-out", "output directory")
	weld := flag.Bool("weld", false, "weld duplicate vertices before export")
	workers := flag.Int("workers", 0, "mesh workers (0 = NumCPU)")
	flag.Parse()

	if *workers > 0 {
		config.SetMeshWorkers(*workers)
	}

	if err := run(*seed, *radius, *outDir, *weld); err != nil {
		log.Fatal(err)
	}
}

func run(seed int64, radius int, outDir string, weld bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	reg, err := registry.LoadFromAssets(assetsDir)
	if err != nil {
		return fmt.Errorf("failed to load block registry: %w", err)
	}

	var a *atlas.Atlas
	err = func() error {
		defer profiling.Track("atlas.Build")()
		a, err = atlas.Build(reg, atlas.NewDirProvider(texturesDir), atlas.DefaultCellsX, atlas.DefaultCellsY)
		return err
	}()
	if err != nil {
		return fmt.Errorf("failed to build texture atlas: %w", err)
	}

	if err := writeAtlasPNG(a, filepath.Join(outDir, "atlas.png")); err != nil {
		return err
	}

	w := world.New(seed)
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.LoadChunk(world.ChunkCoord{X: cx, Z: cz})
		}
	}

	side := 2*radius + 1
	pool := meshing.NewWorkerPool(a, config.GetMeshWorkers(), side*side, seed)
	defer pool.Shutdown()

	results := make(chan meshing.MeshResult, side*side)
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			pool.SubmitJobBlocking(meshing.MeshJob{
				Neighborhood: w,
				Chunk:        w.GetChunk(world.ChunkCoord{X: cx, Z: cz}),
				ResultChan:   results,
			})
		}
	}

	totalQuads, totalVerts := 0, 0
	for i := 0; i < side*side; i++ {
		res := <-results
		mesh := res.Mesh
		if weld {
			func() {
				defer profiling.Track("meshing.Weld")()
				mesh = meshing.Weld(mesh)
			}()
		}
		name := fmt.Sprintf("chunk_%d_%d.obj", res.Coord.X, res.Coord.Z)
		if err := writeOBJ(mesh, res.Coord, filepath.Join(outDir, name)); err != nil {
			return err
		}
		totalQuads += res.Mesh.QuadCount()
		totalVerts += len(mesh.Vertices)
	}

	log.Printf("wrote %d chunks: %d quads, %d vertices", side*side, totalQuads, totalVerts)
	log.Printf("timings: %s", profiling.TopN(5))
	return nil
}

func writeAtlasPNG(a *atlas.Atlas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, a.Image()); err != nil {
		return fmt.Errorf("failed to encode atlas: %w", err)
	}
	return nil
}

// writeOBJ exports the mesh in world space. OBJ indices are 1-based and the
// position, UV and normal buffers run parallel, so one index serves all
// three attributes.
func writeOBJ(m *meshing.Mesh, coord world.ChunkCoord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "o chunk_%d_%d\n", coord.X, coord.Z)

	ox := float32(coord.X * world.ChunkSizeX)
	oz := float32(coord.Z * world.ChunkSizeZ)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X()+ox, v.Y(), v.Z()+oz)
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X(), uv.Y())
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
