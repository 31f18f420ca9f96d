package batch

import (
	"log/slog"

	"toy-scene-renderer/internal/scene"
)

// Simulate replays script against sc at a fixed frame rate and returns one
// frame snapshot per simulated frame. It stops early when the scene asks to
// close. Simulation is sequential; only rendering of the snapshots fans out.
func Simulate(sc scene.Scene, script *Script, fps float64, frames int) ([]*scene.Frame, error) {
	dt := 1 / fps
	in := scene.NewInputState()
	out := make([]*scene.Frame, 0, frames)

	var steps []Step
	if script != nil {
		steps = script.Steps
	}
	stepIdx := -1
	stepEnd := 0.0

	for i := 0; i < frames; i++ {
		now := float64(i) * dt

		// Advance to the step covering this frame
		for stepIdx+1 < len(steps) && now >= stepEnd-1e-9 {
			stepIdx++
			st := &steps[stepIdx]
			stepEnd += max(st.Duration, dt)
			if err := st.apply(sc); err != nil {
				return out, err
			}
		}
		if stepIdx >= 0 && now < stepEnd-1e-9 {
			st := &steps[stepIdx]
			in.SetHeld(st.keys)
			if len(st.Cursor) == 2 {
				in.X, in.Y = st.Cursor[0], st.Cursor[1]
			}
		} else {
			in.SetHeld(nil)
		}

		action := sc.Update(in, dt)
		sc.Stats().Tick(now + dt)
		out = append(out, sc.Frame())
		in.EndFrame()

		if action == scene.Close {
			slog.Info("scene closed", "scene", sc.Name(), "frame", i)
			break
		}
	}
	return out, nil
}
