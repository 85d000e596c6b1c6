package engine

import (
	"testing"

	"github.com/lixenwraith/asteroids/component"
)

func rockAt(x, y, r float64) *component.Asteroid {
	a := &component.Asteroid{Size: 1, Radius: r, Health: 1, MaxHealth: 1}
	a.Place(x, y)
	return a
}

func TestSpatialGrid_QueryExcludesSelfAndDedups(t *testing.T) {
	g := NewSpatialGrid(800, 600, 80)

	// Large radius spans several cells
	big := rockAt(200, 200, 90)
	small := rockAt(230, 210, 10)
	g.Insert(big, big.Radius)
	g.Insert(small, small.Radius)

	got := g.Query(small, small.Radius)
	if len(got) != 1 {
		t.Fatalf("Expected 1 neighbor, got %d", len(got))
	}
	if got[0].Body != component.Body(big) {
		t.Errorf("Expected big asteroid as neighbor")
	}
	if got[0].Radius != 90 {
		t.Errorf("Expected stored radius 90, got %v", got[0].Radius)
	}

	for _, e := range g.Query(big, big.Radius) {
		if e.Body == component.Body(big) {
			t.Errorf("Query returned the querying body")
		}
	}
}

func TestSpatialGrid_WrapsAcrossEdges(t *testing.T) {
	g := NewSpatialGrid(800, 600, 80)

	// Straddles the right edge, must be visible from the left edge
	edge := rockAt(795, 300, 20)
	probe := rockAt(5, 300, 5)
	g.Insert(edge, edge.Radius)

	found := false
	for _, e := range g.Query(probe, probe.Radius) {
		if e.Body == component.Body(edge) {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected wrap-around neighbor across the vertical edge")
	}

	// Corner case: top-left vs bottom-right
	g.Clear()
	corner := rockAt(798, 598, 4)
	g.Insert(corner, corner.Radius)
	origin := rockAt(1, 1, 4)
	if len(g.Query(origin, origin.Radius)) != 1 {
		t.Errorf("Expected diagonal wrap neighbor")
	}
}

func TestSpatialGrid_FarBodiesNotReturned(t *testing.T) {
	g := NewSpatialGrid(800, 600, 80)
	a := rockAt(100, 100, 10)
	b := rockAt(500, 500, 10)
	g.Insert(a, a.Radius)
	g.Insert(b, b.Radius)

	if n := len(g.Query(a, a.Radius)); n != 0 {
		t.Errorf("Expected no neighbors, got %d", n)
	}
}

func TestSpatialGrid_ClearEmptiesCells(t *testing.T) {
	g := NewSpatialGrid(800, 600, 80)
	for i := 0; i < 20; i++ {
		r := rockAt(float64(i*40), 300, 10)
		g.Insert(r, r.Radius)
	}
	if g.Count() == 0 {
		t.Fatalf("Expected entries after insert")
	}
	g.Clear()
	if g.Count() != 0 {
		t.Errorf("Expected empty grid after Clear, got %d entries", g.Count())
	}
}

func TestSpatialGrid_TinyArena(t *testing.T) {
	// Fewer than 3 columns: the 3x3 scan revisits cells, results must stay distinct
	g := NewSpatialGrid(100, 100, 80)
	a := rockAt(10, 10, 5)
	b := rockAt(90, 90, 5)
	g.Insert(a, a.Radius)
	g.Insert(b, b.Radius)

	got := g.Query(a, a.Radius)
	if len(got) != 1 {
		t.Errorf("Expected exactly one distinct neighbor, got %d", len(got))
	}
}
