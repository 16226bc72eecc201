package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"ca3d/internal/core"
	"ca3d/internal/lattice"
	"ca3d/internal/rules"
	"ca3d/internal/sim"
	"ca3d/internal/vis"
)

type ruleList []string

func (l *ruleList) String() string {
	return strings.Join(*l, ",")
}

func (l *ruleList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := sim.NewConfig()
	if err := cfg.FromEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 200, "generations to simulate per rule")
	every := flag.Int("every", 20, "report population every N generations")
	var extra ruleList
	flag.Var(&extra, "also", "additional rule string to survey (repeatable)")
	flag.Parse()
	cfg.Normalize()

	candidates := append(ruleList{cfg.Rules}, extra...)
	for _, rule := range candidates {
		survey(cfg, rule, *steps, *every)
	}
}

func survey(cfg *sim.Config, rule string, steps, every int) {
	r, err := rules.Parse(rule)
	if err != nil {
		log.Printf("skipping %q: %v", rule, err)
		return
	}

	dims := core.NewCubeClamped(16, 96, cfg.EdgeLength)
	lat := lattice.New(dims)
	static := sim.NewStatic(dims, cfg.Minimum, cfg.Maximum)
	dyn := sim.NewDynamic(cfg.Seed)
	fx := &vis.Recorder{}
	stepper := sim.NewStepper(lat, r, static, dyn, fx, nil)
	seeder := sim.NewSeeder(lat, r, static, dyn, fx)

	seeder.SeedFull(cfg.Density)
	fmt.Printf("rule %q, edge %d, seeded %d cells\n", rule, dims.X, dyn.Population())
	for i := 1; i <= steps; i++ {
		stepper.Advance()
		if every > 0 && i%every == 0 {
			fmt.Printf("  gen %4d: population %8d, density %6.4f, growth %v\n",
				dyn.Generation(), dyn.Population(), sim.RelDensity(dims.X, dyn.Population()), dyn.Growth())
		}
	}
	fmt.Printf("  final: population %d, despawned %d, shrunk %d\n",
		dyn.Population(), fx.Despawned.Load(), fx.Shrunk.Load())
}
