package scene

// FrameStats averages frame time over windows of at least one second.
type FrameStats struct {
	FrameRate float64
	FrameTime float64

	last   float64
	frames int
	inited bool
}

// NewFrameStats seeds the stats with a nominal rate.
func NewFrameStats(rate float64) FrameStats {
	return FrameStats{FrameRate: rate, FrameTime: 1 / rate}
}

// Tick records one frame finished at now (seconds on any monotonic clock).
// The first call only sets the reference time.
func (s *FrameStats) Tick(now float64) {
	if !s.inited {
		s.last = now
		s.inited = true
		return
	}
	s.frames++
	elapsed := now - s.last
	if elapsed > 1.0 {
		s.FrameTime = elapsed / float64(s.frames)
		s.FrameRate = 1 / s.FrameTime
		s.last = now
		s.frames = 0
	}
}
