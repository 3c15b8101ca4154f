package renderer

import (
	"fmt"

	"github.com/user/go-phong-raytracer/pkg/scene"
)

// Logger receives render progress output.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// RenderOptions configures a parallel render.
type RenderOptions struct {
	NumWorkers int // 0 = use CPU count
}

// Render casts one primary ray per pixel and returns the finished canvas.
// Each pixel is a pure function of (camera, world), so rendering the same
// pair twice produces identical canvases.
func (c *Camera) Render(world *scene.World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(world, canvas, y)
	}
	return canvas
}

// RenderParallel renders with the pixel grid partitioned by row across a
// worker pool. Workers write to disjoint rows of the shared canvas, so the
// only synchronization is the final join; the result is identical to Render.
func (c *Camera) RenderParallel(world *scene.World, opts RenderOptions) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)

	pool := newWorkerPool(opts.NumWorkers, c.VSize)
	pool.start(func(task rowTask) {
		c.renderRow(world, canvas, task.Y)
	})
	for y := 0; y < c.VSize; y++ {
		pool.submit(rowTask{Y: y})
	}
	pool.wait()

	return canvas
}

func (c *Camera) renderRow(world *scene.World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.WritePixel(x, y, world.ColorAt(ray))
	}
}
