// Command kdbench builds a kd-tree over a synthetic scene and reports
// construction and traversal timings.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	kdtree "github.com/mirstar13/kdtrace"
	"github.com/mirstar13/kdtrace/primitives"
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	numPrims := flag.Int("prims", 50000, "number of primitives in the synthetic scene")
	numRays := flag.Int("rays", 200000, "number of rays to cast during the traversal benchmark")
	seed := flag.Int64("seed", 1, "PRNG seed for the synthetic scene and ray set")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
		fmt.Printf("CPU profiling enabled, writing to %s\n", *cpuprofile)
	}

	if *memprofile != "" {
		defer func() {
			f, err := os.Create(*memprofile)
			if err != nil {
				fmt.Printf("could not create memory profile: %v\n", err)
				return
			}
			defer f.Close()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
		}()
	}

	rng := rand.New(rand.NewSource(*seed))
	scene := buildSyntheticScene(rng, *numPrims)

	fmt.Printf("=== kd-tree construction/traversal benchmark ===\n")
	fmt.Printf("primitives: %d\n\n", len(scene))

	buildStart := time.Now()
	tree, err := kdtree.Build(scene, kdtree.DefaultBuildConfig())
	buildElapsed := time.Since(buildStart)
	if err != nil {
		fmt.Printf("build failed: %v\n", err)
		os.Exit(1)
	}

	printBuildStats(buildElapsed, tree.Stats)

	rays := buildSyntheticRays(rng, tree.WorldBound(), *numRays)

	traceStart := time.Now()
	hits := 0
	var hit kdtree.Hit
	for i := range rays {
		if tree.Intersect(&rays[i], &hit) {
			hits++
		}
	}
	traceElapsed := time.Since(traceStart)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("traversal: %d rays, %d hits (%.1f%%)\n", len(rays), hits, 100*float64(hits)/float64(len(rays)))
	fmt.Printf("total: %s, avg: %s/ray\n", traceElapsed, traceElapsed/time.Duration(len(rays)))
	fmt.Println(strings.Repeat("=", 60))
}

func printBuildStats(elapsed time.Duration, stats kdtree.BuildStats) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("build time:        %s\n", elapsed)
	fmt.Printf("nodes:             %d\n", stats.NodeCount)
	fmt.Printf("leaves:            %d (%d empty)\n", stats.LeafCount, stats.EmptyLeafCount)
	fmt.Printf("prims/leaf (avg):  %.2f\n", stats.PrimsPerLeaf)
	fmt.Printf("max depth reached: %d\n", stats.MaxDepthReached)
	fmt.Printf("leaf depth avg/sd: %.2f / %.2f\n", stats.AverageLeafDepth, stats.LeafDepthStdDev)
	fmt.Println(strings.Repeat("=", 60))
}

func buildSyntheticScene(rng *rand.Rand, n int) []kdtree.Primitive {
	const worldExtent = 1000.0
	prims := make([]kdtree.Primitive, n)
	for i := range prims {
		center := kdtree.Vector{
			X: (rng.Float64()*2 - 1) * worldExtent,
			Y: (rng.Float64()*2 - 1) * worldExtent,
			Z: (rng.Float64()*2 - 1) * worldExtent,
		}
		radius := 0.5 + rng.Float64()*4.5
		prims[i] = &primitives.Sphere{Center: center, Radius: radius}
	}
	return prims
}

func buildSyntheticRays(rng *rand.Rand, bounds kdtree.AABB, n int) []kdtree.Ray {
	diag := bounds.Diagonal()
	radius := math.Sqrt(diag.X*diag.X+diag.Y*diag.Y+diag.Z*diag.Z) * 0.75

	rays := make([]kdtree.Ray, n)
	for i := range rays {
		origin := kdtree.Vector{
			X: (rng.Float64()*2 - 1) * radius,
			Y: (rng.Float64()*2 - 1) * radius,
			Z: (rng.Float64()*2 - 1) * radius,
		}
		target := kdtree.Vector{
			X: (rng.Float64()*2 - 1) * radius,
			Y: (rng.Float64()*2 - 1) * radius,
			Z: (rng.Float64()*2 - 1) * radius,
		}
		rays[i] = kdtree.NewRay(origin, target.Sub(origin))
	}
	return rays
}
