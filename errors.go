package kdtree

import "fmt"

// ErrUnrefinedPrimitive is returned by Build when a primitive reports
// CanIntersect() == false, carrying the offending index.
type ErrUnrefinedPrimitive struct {
	Index int
}

func (e *ErrUnrefinedPrimitive) Error() string {
	return fmt.Sprintf("kdtree: primitive %d reports CanIntersect() == false; refine it before calling Build", e.Index)
}

// ErrTreeTooLarge is returned by Build when the node array would exceed
// the 30-bit index space the compact node encoding relies on.
type ErrTreeTooLarge struct {
	NodeCount int
}

func (e *ErrTreeTooLarge) Error() string {
	return fmt.Sprintf("kdtree: build requires %d nodes, exceeding the maximum of %d addressable by a 30-bit index", e.NodeCount, maxTreeNodes)
}
