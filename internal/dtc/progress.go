package dtc

import "sync"

// ProgressLog is the delivery path moving log lines from the job's
// worker goroutine to the presentation layer. One producer appends a
// line at a time as tool output arrives; one consumer polls at a
// fixed interval and drains everything currently available. Order is
// preserved, nothing is dropped or duplicated, and the producer is
// never blocked: output volume is bounded by file count and line
// length, so the queue is unbounded.
type ProgressLog struct {
	mu    sync.Mutex
	lines []string
}

// NewProgressLog creates an empty progress log.
func NewProgressLog() *ProgressLog {
	return &ProgressLog{}
}

// Append adds one line to the queue.
func (p *ProgressLog) Append(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, line)
}

// Drain removes and returns all currently queued lines in arrival
// order. Returns nil when nothing is pending.
func (p *ProgressLog) Drain() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.lines) == 0 {
		return nil
	}
	out := p.lines
	p.lines = nil
	return out
}
