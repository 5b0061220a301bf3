package pipeline

import "time"

// SetNowForTests overrides the processor clock so tests control timestamps.
func (p *Single) SetNowForTests(now func() time.Time) { p.now = now }

// SetNowForTests overrides the processor clock so tests control timestamps.
func (p *Collection) SetNowForTests(now func() time.Time) { p.now = now }
