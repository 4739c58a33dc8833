// Command kdinspect builds a small kd-tree and lets a user step through
// one ray's traversal node by node, pressing a key to advance. Keyboard
// handling reads raw terminal keys through github.com/eiannone/keyboard
// rather than buffered line input.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/eiannone/keyboard"

	kdtree "github.com/mirstar13/kdtrace"
	"github.com/mirstar13/kdtrace/primitives"
)

func main() {
	rng := rand.New(rand.NewSource(7))
	scene := make([]kdtree.Primitive, 200)
	for i := range scene {
		scene[i] = &primitives.Sphere{
			Center: kdtree.Vector{
				X: (rng.Float64()*2 - 1) * 50,
				Y: (rng.Float64()*2 - 1) * 50,
				Z: (rng.Float64()*2 - 1) * 50,
			},
			Radius: 0.5 + rng.Float64()*2,
		}
	}

	tree, err := kdtree.Build(scene, kdtree.DefaultBuildConfig())
	if err != nil {
		fmt.Printf("build failed: %v\n", err)
		os.Exit(1)
	}

	ray := kdtree.NewRay(
		kdtree.Vector{X: -100, Y: 0, Z: 0},
		kdtree.Vector{X: 1, Y: 0.1, Z: 0.05},
	)
	steps := tree.Trace(ray)

	fmt.Printf("tree built: %d nodes, %d leaves\n", tree.Stats.NodeCount, tree.Stats.LeafCount)
	fmt.Printf("tracing ray from %v, %d steps recorded\n", ray.Origin, len(steps))
	fmt.Println("press any key to step forward, Esc to quit")

	if err := keyboard.Open(); err != nil {
		fmt.Printf("could not open keyboard (running headless?): %v\n", err)
		dumpAll(steps)
		return
	}
	defer keyboard.Close()

	for i, step := range steps {
		printStep(i, step)

		_, key, err := keyboard.GetKey()
		if err != nil {
			continue
		}
		if key == keyboard.KeyEsc {
			break
		}
	}
}

func printStep(i int, s kdtree.TraceStep) {
	if s.Leaf {
		fmt.Printf("[%3d] node=%-6d t=[%.3f, %.3f] LEAF prims=%d\n", i, s.NodeIndex, s.TMin, s.TMax, s.PrimsTested)
		return
	}
	fmt.Printf("[%3d] node=%-6d t=[%.3f, %.3f] split axis=%s pos=%.3f\n", i, s.NodeIndex, s.TMin, s.TMax, s.Axis, s.SplitPos)
}

func dumpAll(steps []kdtree.TraceStep) {
	for i, step := range steps {
		printStep(i, step)
	}
}
