package services

import (
	"testing"
	"time"
)

func TestTipsRotatorWrapsAround(t *testing.T) {
	rotator := NewTipsRotator(time.Hour)

	first := rotator.Current()
	if first.Exercise != exerciseTips[0] || first.Sleep != sleepTips[0] || first.Nutrition != nutritionTips[0] {
		t.Fatalf("Rotator must start at the first tip of each list, got %+v", first)
	}

	// One full cycle of the exercise list lands back on the first tip
	for i := 0; i < len(exerciseTips); i++ {
		rotator.advance()
	}
	if got := rotator.Current(); got.Exercise != exerciseTips[0] {
		t.Errorf("Expected wraparound to %q, got %q", exerciseTips[0], got.Exercise)
	}
}

func TestTipsRotatorAdvancesIndependently(t *testing.T) {
	rotator := NewTipsRotator(time.Hour)

	rotator.advance()
	got := rotator.Current()
	if got.Exercise != exerciseTips[1] {
		t.Errorf("Expected exercise tip %q, got %q", exerciseTips[1], got.Exercise)
	}
	if got.Sleep != sleepTips[1] {
		t.Errorf("Expected sleep tip %q, got %q", sleepTips[1], got.Sleep)
	}
	if got.Nutrition != nutritionTips[1] {
		t.Errorf("Expected nutrition tip %q, got %q", nutritionTips[1], got.Nutrition)
	}
}

func TestTipsRotatorStartStop(t *testing.T) {
	rotator := NewTipsRotator(5 * time.Millisecond)
	rotator.Start()

	first := rotator.Current()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rotator.Current() != first {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if rotator.Current() == first {
		t.Fatalf("Rotator never advanced")
	}

	rotator.Stop()
	// Stop is idempotent
	rotator.Stop()

	// No further advancement after Stop
	time.Sleep(20 * time.Millisecond)
	stopped := rotator.Current()
	time.Sleep(50 * time.Millisecond)
	if rotator.Current() != stopped {
		t.Errorf("Rotator kept advancing after Stop")
	}
}
