package palette

import "math"

// Level is a WCAG contrast compliance level
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// Contrast thresholds, inclusive at the lower bound
const (
	RatioAAA     = 7.0
	RatioAA      = 4.5
	RatioAALarge = 3.0
)

// luminance weights and the low-gamma cutoff
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
	lowGamma    = 0.03928
)

// RelativeLuminance returns the gamma-corrected, perceptually weighted brightness in [0,1]
func RelativeLuminance(c Color) float64 {
	cc := c.colorful()
	return redWeight*linearize(cc.R) + greenWeight*linearize(cc.G) + blueWeight*linearize(cc.B)
}

func linearize(v float64) float64 {
	if v <= lowGamma {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio is symmetric and ranges from 1 (identical) to 21 (black on white)
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatioHex parses both colors before comparing them
func ContrastRatioHex(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ca, cb), nil
}

// Classify maps a contrast ratio to its compliance level.
// AA Large still counts as a pass.
func Classify(ratio float64) (Level, bool) {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA, true
	case ratio >= RatioAA:
		return LevelAA, true
	case ratio >= RatioAALarge:
		return LevelAALarge, true
	default:
		return LevelFail, false
	}
}
