package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Tool   string  `json:"tool,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded sequence of pointer and command actions
// against a Surface, bypassing the real input devices. Used for automated
// interaction tests and reproducing bug reports.
//
// Supported actions: "tool" (switch by name), "click", "drag" (interpolated
// over steps positions), "undo", "redo", "delete", "clear".
type ScriptRunner struct {
	steps []scriptStep
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("easel: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("easel: parse script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Run executes every step against the surface. Unknown actions and unknown
// tool names fail; the steps before the failure stay applied.
func (r *ScriptRunner) Run(s *Surface) error {
	for i, st := range r.steps {
		if err := apply(s, st); err != nil {
			return fmt.Errorf("easel: script step %d: %w", i, err)
		}
	}
	return nil
}

func apply(s *Surface, st scriptStep) error {
	switch st.Action {
	case "tool":
		tool, err := toolByName(s, st.Tool)
		if err != nil {
			return err
		}
		s.SetTool(tool)
	case "click":
		s.tool.Down(st.X, st.Y)
		s.tool.Up(st.X, st.Y)
	case "drag":
		steps := st.Steps
		if steps < 2 {
			steps = 2
		}
		from := Vec2{X: st.FromX, Y: st.FromY}
		to := Vec2{X: st.ToX, Y: st.ToY}
		s.tool.Down(from.X, from.Y)
		for i := 1; i < steps; i++ {
			p := Lerp(from, to, float64(i)/float64(steps-1))
			s.tool.Drag(p.X, p.Y)
		}
		s.tool.Up(to.X, to.Y)
	case "undo":
		s.Undo()
	case "redo":
		s.Redo()
	case "delete":
		s.ctrl.DeleteSelected()
	case "clear":
		s.Clear()
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func toolByName(s *Surface, name string) (Tool, error) {
	switch name {
	case "select":
		return NewSelectTool(s), nil
	case "pen":
		return NewPenTool(s), nil
	case "rectangle":
		return NewRectangleTool(s), nil
	case "circle":
		return NewCircleTool(s), nil
	case "line":
		return NewLineTool(s), nil
	case "arrow":
		return NewArrowTool(s), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}
