package palette

import "sort"

// EvaluatedPositions are the shades paired up for contrast scoring. Six positions
// keep the report at 15 pairs instead of all 45.
var EvaluatedPositions = [...]Position{50, 100, 200, 500, 700, 900}

// evaluatedIndexes maps EvaluatedPositions onto Ramp indexes
var evaluatedIndexes = [...]int{0, 1, 2, 5, 7, 9}

// PairCount is the number of scores every report holds
const PairCount = len(evaluatedIndexes) * (len(evaluatedIndexes) - 1) / 2

// Score is the contrast result of the foreground shade drawn on the background shade
type Score struct {
	Background Shade
	Foreground Shade
	Ratio      float64
	Level      Level
	Pass       bool
}

// ScoreAccessibility pairs every evaluated shade with each darker evaluated shade,
// lighter one as background, and ranks the pairs by contrast ratio, highest first.
// Ties keep enumeration order.
func ScoreAccessibility(ramp Ramp) []Score {
	scores := make([]Score, 0, PairCount)
	for i, bgIdx := range evaluatedIndexes {
		bg := ramp[bgIdx]
		for _, fgIdx := range evaluatedIndexes[i+1:] {
			fg := ramp[fgIdx]
			ratio := ContrastRatio(bg.Color, fg.Color)
			level, pass := Classify(ratio)
			scores = append(scores, Score{
				Background: bg,
				Foreground: fg,
				Ratio:      ratio,
				Level:      level,
				Pass:       pass,
			})
		}
	}

	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Ratio > scores[b].Ratio
	})
	return scores
}

// Partition splits ranked scores into passing and failing lists, keeping rank order
func Partition(scores []Score) (passing, failing []Score) {
	passing = []Score{}
	failing = []Score{}
	for _, s := range scores {
		if s.Pass {
			passing = append(passing, s)
		} else {
			failing = append(failing, s)
		}
	}
	return passing, failing
}
