package system

import (
	"image"
	"testing"
)

func TestPlaceObstacles(t *testing.T) {
	obstacles := PlaceObstacles("nebula.png", image.Pt(200, 200), 2048, 1480, 0.5, 1.0/16.0)

	for i, o := range obstacles {
		wantX := 2048 + 1024*float64(i)
		if o.Position.X != wantX {
			t.Fatalf("obstacle %d: expected x %v, got %v", i, wantX, o.Position.X)
		}
		if o.Position.Y != 1280 {
			t.Fatalf("obstacle %d: expected to rest on the ground at 1280, got %v", i, o.Position.Y)
		}
		if o.FrameIndex != 0 || o.Frame != image.Rect(0, 0, 200, 200) {
			t.Fatalf("obstacle %d: expected first cell, got %d %v", i, o.FrameIndex, o.Frame)
		}
	}
	if got := obstacles.Last().Position.X; got != 2048+1024*5 {
		t.Fatalf("expected last obstacle at %v, got %v", 2048+1024*5, got)
	}
}

func TestAdvanceObstacles(t *testing.T) {
	start := PlaceObstacles("nebula.png", image.Pt(200, 200), 2048, 1480, 0.5, 0.25)

	tests := []struct {
		name      string
		dt        float64
		wantShift float64
		wantFrame int
	}{
		{"short_step_moves_only", 0.1, -60, 0},
		{"full_frame_moves_and_animates", 0.25, -150, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AdvanceObstacles(start, tc.dt, -600, 7)
			for i := range got {
				if dx := got[i].Position.X - start[i].Position.X; dx != tc.wantShift {
					t.Fatalf("obstacle %d: expected shift %v, got %v", i, tc.wantShift, dx)
				}
				if got[i].Position.Y != start[i].Position.Y {
					t.Fatalf("obstacle %d: expected y unchanged", i)
				}
				if got[i].FrameIndex != tc.wantFrame {
					t.Fatalf("obstacle %d: expected frame %d, got %d", i, tc.wantFrame, got[i].FrameIndex)
				}
			}
			if start[0].Position.X != 2048 {
				t.Fatalf("expected input field untouched")
			}
		})
	}
}

func TestAdvanceGoalLine(t *testing.T) {
	goal := 7168.0
	for i := 0; i < 100; i++ {
		goal = AdvanceGoalLine(goal, 0.01, -600)
	}
	if goal < 6567.999 || goal > 6568.001 {
		t.Fatalf("expected goal line ~6568 after 1s, got %v", goal)
	}
}

func TestObstacleSystemMovesGoalLineWithField(t *testing.T) {
	w := newTestWorld()
	gap := w.GoalLine - w.Obstacles.Last().Position.X

	for i := 0; i < 30; i++ {
		NewObstacleSystem().Update(w, 1.0/60.0)
	}
	if got := w.GoalLine - w.Obstacles.Last().Position.X; got != gap {
		t.Fatalf("expected goal line to track the last obstacle (gap %v), got gap %v", gap, got)
	}
}
