package palette

import "sync"

// Memo remembers the last ramp and the last score report so repeated requests for the
// same parameters skip recomputation. It is safe for concurrent use and returns copies,
// so callers never share state through it.
type Memo struct {
	mu sync.Mutex

	hasRamp    bool
	lastParams Params
	lastRamp   Ramp

	hasScores  bool
	scoredRamp Ramp
	lastScores []Score
}

// Shades returns GenerateShades(p), reusing the previous result when p is unchanged
func (m *Memo) Shades(p Params) Ramp {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasRamp && m.lastParams == p {
		return m.lastRamp
	}
	m.lastRamp = GenerateShades(p)
	m.lastParams = p
	m.hasRamp = true
	return m.lastRamp
}

// Scores returns ScoreAccessibility(r), reusing the previous result when r is unchanged
func (m *Memo) Scores(r Ramp) []Score {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasScores || m.scoredRamp != r {
		m.lastScores = ScoreAccessibility(r)
		m.scoredRamp = r
		m.hasScores = true
	}
	out := make([]Score, len(m.lastScores))
	copy(out, m.lastScores)
	return out
}
