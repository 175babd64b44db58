package main

import (
	"testing"

	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
)

func TestNearest(t *testing.T) {
	from := simulation.EntityView{Position: utils.Vec2{X: 100, Y: 100}}
	candidates := []simulation.EntityView{
		{ID: 1, Position: utils.Vec2{X: 300, Y: 100}},
		{ID: 2, Position: utils.Vec2{X: 90, Y: 120}},
		{ID: 3, Position: utils.Vec2{X: 100, Y: 200}},
	}

	got, ok := nearest(from, candidates)
	if !ok || got.ID != 2 {
		t.Errorf("nearest() = (%d, %v), want (2, true)", got.ID, ok)
	}

	if _, ok := nearest(from, nil); ok {
		t.Error("nearest() with no candidates should report false")
	}
}
