package core

import "testing"

func TestTrunc(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{21.0, 21},
		{20.99, 20},
		{3.2, 3},
		{0.4, 0},
	}

	for _, tc := range tests {
		if got := Trunc(tc.in); got != tc.expected {
			t.Errorf("Trunc(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestIntentLatch(t *testing.T) {
	var l IntentLatch

	if l.Take() != IntentNone {
		t.Error("empty latch should yield IntentNone")
	}

	l.Push(IntentJump)
	l.Push(IntentRestart)
	if got := l.Take(); got != IntentJump {
		t.Errorf("first intent should win, got %v", got)
	}
	if got := l.Take(); got != IntentNone {
		t.Errorf("Take should clear the latch, got %v", got)
	}

	l.Push(IntentJump)
	l.Push(IntentQuit)
	if got := l.Take(); got != IntentQuit {
		t.Errorf("Quit should override pending intents, got %v", got)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventJump, EventCrash}}
	if !r.Has(EventCrash) {
		t.Error("Has(EventCrash) should be true")
	}
	if r.Has(EventAirJump) {
		t.Error("Has(EventAirJump) should be false")
	}
}
