//go:build ebiten

package app

import (
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ca3d/internal/core"
	"ca3d/internal/lattice"
	"ca3d/internal/render"
	"ca3d/internal/rules"
	"ca3d/internal/sim"
	"ca3d/internal/vis"
)

// intervalStep is the amount one keystroke changes the generation
// interval by.
const intervalStep = 31250 * time.Microsecond

// Game drives the simulation from the ebiten loop and doubles as the
// rendering collaborator: it tracks the visual scale per handle so aging
// cells dim in the slice view.
type Game struct {
	cfg     *sim.Config
	lat     *lattice.Lattice
	stepper *sim.Stepper
	seeder  *sim.Seeder
	timer   *core.StepTimer
	dyn     *sim.Dynamic
	painter *render.SlicePainter

	mu     sync.Mutex
	next   vis.Handle
	scales map[vis.Handle]float64

	sliceZ int
	scale  int
}

// New builds the full simulation stack from the provided configuration.
// An unparsable rule string falls back to the default rule set.
func New(cfg *sim.Config, scale int) *Game {
	dims := core.NewCubeClamped(16, 96, cfg.EdgeLength)
	r, err := rules.Parse(cfg.Rules)
	if err != nil {
		log.Printf("WARNING: %v, using default rules", err)
		r = rules.Default()
	}
	log.Printf("Rules:\n%s", r)

	lat := lattice.New(dims)
	static := sim.NewStatic(dims, cfg.Minimum, cfg.Maximum)
	dyn := sim.NewDynamic(cfg.Seed)
	timer := core.NewStepTimer(time.Duration(cfg.IntervalMS) * time.Millisecond)

	g := &Game{
		cfg:     cfg,
		lat:     lat,
		timer:   timer,
		dyn:     dyn,
		painter: render.NewSlicePainter(dims.X, dims.Y),
		scales:  make(map[vis.Handle]float64),
		sliceZ:  dims.Z / 2,
		scale:   scale,
	}
	g.stepper = sim.NewStepper(lat, r, static, dyn, g, timer)
	g.seeder = sim.NewSeeder(lat, r, static, dyn, g)
	g.seeder.SeedFull(cfg.Density)
	return g
}

// AllocateVisual reserves a handle for a newly spawned cell. Safe for
// concurrent use during parallel evaluation.
func (g *Game) AllocateVisual(vis.Vec3) vis.Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	g.scales[g.next] = 1
	return g.next
}

// DespawnVisual drops the handle's visual state.
func (g *Game) DespawnVisual(h vis.Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.scales, h)
}

// ShrinkVisual scales the handle's visual down to show aging.
func (g *Game) ShrinkVisual(h vis.Handle, factor float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scales[h] *= factor
}

// Update handles input and advances the simulation when the timer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.timer.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.timer.Increase(intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.timer.Decrease(intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.seeder.SeedFull(g.cfg.NewAmount)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.seeder.SeedCore(g.cfg.CoreDensity, g.cfg.Fraction)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sliceZ = lattice.Wrap(g.sliceZ+1, g.lat.Dims().Z)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sliceZ = lattice.Wrap(g.sliceZ-1, g.lat.Dims().Z)
	}

	g.stepper.Tick()
	return nil
}

// Draw renders the current z slice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.painter.Blit(screen, g.lat, g.sliceZ, g.scale, func(c *lattice.Cell) float64 {
		if s, ok := g.scales[c.Visual]; ok {
			return s
		}
		return 1
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.lat.Dims()
	return d.X * g.scale, d.Y * g.scale
}

// Dims exposes the lattice dimensions for window sizing.
func (g *Game) Dims() core.Dims { return g.lat.Dims() }
