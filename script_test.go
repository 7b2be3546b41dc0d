package easel

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tool", "tool": "rectangle"},
			{"action": "drag", "fromX": 10, "fromY": 10, "toX": 100, "toY": 80, "steps": 5},
			{"action": "click", "x": 50, "y": 50},
			{"action": "undo"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tool" || runner.steps[0].Tool != "rectangle" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "drag" || runner.steps[1].ToX != 100 || runner.steps[1].Steps != 5 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "click" || runner.steps[2].X != 50 || runner.steps[2].Y != 50 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "undo" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScriptEmpty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}
