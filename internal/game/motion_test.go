package game

import "testing"

func TestAdvanceBeforeTarget(t *testing.T) {
	c := Spawn(NewCue(3, Slow, Up))
	Advance(&c, 0.5)
	if c.Position.X != SpawnPosition+100 {
		t.Fatalf("expected x %v, got %v", SpawnPosition+100, c.Position.X)
	}
	if c.Position.Y != Up.Y() || c.Scale != 1 || c.Rotation != Up.Rotation() {
		t.Fatalf("cue eased before passing the window: %+v", c)
	}
}

func TestAdvancePastWindow(t *testing.T) {
	c := Spawn(NewCue(3, Fast, Down))
	c.Position.X = TargetPosition + Threshold + 60
	Advance(&c, 0)
	// overshoot is 60 with no movement
	if c.Position.Y != Down.Y() {
		t.Fatalf("zero delta should not drop the cue, got y %v", c.Position.Y)
	}
	if c.Scale != 0.8 {
		t.Fatalf("expected scale 0.8, got %v", c.Scale)
	}

	Advance(&c, 0.1)
	if c.Position.Y >= Down.Y() {
		t.Fatalf("expected cue to drop, got y %v", c.Position.Y)
	}
	if c.Rotation >= Down.Rotation() {
		t.Fatalf("expected cue to rotate clockwise, got %v", c.Rotation)
	}

	c.Position.X = 10000
	Advance(&c, 0)
	if c.Scale != minScale {
		t.Fatalf("expected scale floor %v, got %v", minScale, c.Scale)
	}
}
