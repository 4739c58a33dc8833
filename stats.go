package kdtree

import "math"

// BuildStats summarizes the shape of a built tree. Build always fills one
// in as the returned tree's Stats field; nothing here affects traversal correctness, it
// exists so callers can diagnose pathological builds.
type BuildStats struct {
	NodeCount              int
	LeafCount              int
	EmptyLeafCount         int
	PrimsPerLeaf           float64
	MaxDepthReached        int
	AverageLeafDepth       float64
	LeafDepthStdDev        float64
	primsAccumulated       int64
	nonEmptyLeafDepthSum   int64
	nonEmptyLeafDepthSumSq int64
}

func (s *BuildStats) recordLeaf(primCount, depth int) {
	s.LeafCount++
	if primCount == 0 {
		s.EmptyLeafCount++
		return
	}
	s.primsAccumulated += int64(primCount)
	s.nonEmptyLeafDepthSum += int64(depth)
	s.nonEmptyLeafDepthSumSq += int64(depth) * int64(depth)
	if depth > s.MaxDepthReached {
		s.MaxDepthReached = depth
	}
}

func (s *BuildStats) finalize() {
	nonEmpty := s.LeafCount - s.EmptyLeafCount
	if nonEmpty == 0 {
		return
	}
	s.PrimsPerLeaf = float64(s.primsAccumulated) / float64(nonEmpty)
	s.AverageLeafDepth = float64(s.nonEmptyLeafDepthSum) / float64(nonEmpty)
	meanSq := float64(s.nonEmptyLeafDepthSumSq) / float64(nonEmpty)
	variance := meanSq - s.AverageLeafDepth*s.AverageLeafDepth
	if variance < 0 {
		variance = 0
	}
	s.LeafDepthStdDev = math.Sqrt(variance)
}
