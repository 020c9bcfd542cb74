package palette

const (
	// chance that a randomized color ignores the current hue entirely
	freshHueChance = 0.3
	hueWander      = 60.0

	randomSatMin    = 20.0
	randomSatSpan   = 80.0
	randomLightMin  = 20.0
	randomLightSpan = 60.0
)

// RandSource is the part of *rand.Rand that RandomBaseColor draws from
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// RandomBaseColor picks a new base color. Most of the time it stays within 60 degrees
// of current's hue; otherwise the hue is drawn fresh. Saturation and lightness avoid
// the washed-out and near-black extremes.
func RandomBaseColor(rng RandSource, current Color) Color {
	var hue float64
	if rng.Float64() < freshHueChance {
		hue = float64(rng.Intn(360))
	} else {
		currentHue, _, _ := current.HSL()
		hue = wrapHue(currentHue + (rng.Float64()*2*hueWander - hueWander))
	}
	sat := randomSatMin + rng.Float64()*randomSatSpan
	light := randomLightMin + rng.Float64()*randomLightSpan
	return HSLToColor(hue, sat, light)
}
