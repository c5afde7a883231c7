package guide

// Progress counts completed sections out of a fixed total.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Increment adds one completed section, never exceeding Total.
func (p *Progress) Increment() bool {
	if p.Completed >= p.Total {
		return false
	}
	p.Completed++
	return true
}

// Fraction returns Completed/Total clamped to [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Completed) / float64(p.Total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Percent returns the completion percentage clamped to [0, 100].
func (p Progress) Percent() float64 {
	return p.Fraction() * 100
}

// Done reports whether every section has been completed.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed >= p.Total
}
