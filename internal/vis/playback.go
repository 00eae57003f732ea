package vis

import "github.com/katalvlaran/gridpath/gridmap"

// Probe is one finished search shown by the viewer: the start cell, the
// path it found, and its accumulated cost.
type Probe struct {
	Start gridmap.Cell
	Path  []gridmap.Cell
	Cost  int64
}

// Playback steps through probes one at a time, either manually or on a
// frame timer while playing.
type Playback struct {
	total   int
	idx     int
	playing bool
	tick    int
	stride  int // Frames per automatic step
}

// NewPlayback creates a playback over n probes advancing every stride
// frames while playing.
func NewPlayback(n, stride int) *Playback {
	if stride < 1 {
		stride = 1
	}

	return &Playback{total: n, stride: stride}
}

// Index returns the current probe index.
func (p *Playback) Index() int { return p.idx }

// Playing reports whether automatic advance is active.
func (p *Playback) Playing() bool { return p.playing }

// TogglePlay starts or pauses automatic advance.
func (p *Playback) TogglePlay() { p.playing = !p.playing }

// StepForward advances one probe and pauses at the end.
func (p *Playback) StepForward() {
	if p.idx < p.total-1 {
		p.idx++
	} else {
		p.playing = false
	}
}

// StepBack rewinds one probe.
func (p *Playback) StepBack() {
	if p.idx > 0 {
		p.idx--
	}
}

// Reset returns to the first probe and pauses.
func (p *Playback) Reset() {
	p.idx = 0
	p.playing = false
}

// Advance is called once per frame; it steps forward every stride frames
// while playing.
func (p *Playback) Advance() {
	if !p.playing {
		return
	}
	p.tick++
	if p.tick >= p.stride {
		p.tick = 0
		p.StepForward()
	}
}
