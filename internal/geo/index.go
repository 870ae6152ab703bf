package geo

import (
	"github.com/dhconnelly/rtreego"

	"github.com/smartcity/trafficmap/internal/domain"
)

const pointTolerance = 1e-6

type indexedLandmark struct {
	lm       domain.Landmark
	envelope rtreego.Rect
}

func (il *indexedLandmark) Bounds() rtreego.Rect {
	return il.envelope
}

// Index answers nearest-landmark queries over a fixed set of landmarks
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an R-tree over the given landmarks
func NewIndex(landmarks []domain.Landmark) *Index {
	tree := rtreego.NewTree(2, 2, 8)
	for _, lm := range landmarks {
		p := rtreego.Point{lm.Lat, lm.Lng}
		tree.Insert(&indexedLandmark{lm: lm, envelope: p.ToRect(pointTolerance)})
	}
	return &Index{tree: tree, size: len(landmarks)}
}

// Nearest returns the landmark closest to c. ok is false when the index is empty.
func (idx *Index) Nearest(c domain.Coordinate) (domain.Landmark, bool) {
	if idx == nil || idx.size == 0 {
		return domain.Landmark{}, false
	}
	// The tree ranks by planar degree distance; re-rank the top few by
	// great-circle distance so longitude compression doesn't skew the result.
	candidates := idx.tree.NearestNeighbors(3, rtreego.Point{c.Lat, c.Lng})
	var (
		best  domain.Landmark
		bestD = -1.0
	)
	for _, s := range candidates {
		il, ok := s.(*indexedLandmark)
		if !ok {
			continue
		}
		d := DistanceMeters(c, il.lm.Coordinate)
		if bestD < 0 || d < bestD {
			best, bestD = il.lm, d
		}
	}
	return best, bestD >= 0
}
