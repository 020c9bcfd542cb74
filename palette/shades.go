package palette

// Position is a slot on the 50..900 shade scale
type Position int

// Positions lists the ramp slots from lightest to darkest
var Positions = [ShadeCount]Position{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// ShadeCount is the number of shades in every ramp
const ShadeCount = 10

const (
	DefaultVibrancy = 50.0
	DefaultHueShift = 0.0
	MinHueShift     = -180.0
	MaxHueShift     = 180.0

	// lightness of the 50 and 900 ends of every ramp
	lightEnd = 97.0
	darkEnd  = 5.0
	// position 500 follows the base lightness inside this band so both halves of the
	// ramp keep room to step
	anchorMin = 15.0
	anchorMax = 85.0
)

// DefaultBaseColor is the color the palette tool opens with
var DefaultBaseColor = Color{R: 0x15, G: 0x43, B: 0x7F}

// curveWeights[i] is how far position i sits from the anchor toward its end of the ramp
var curveWeights = [ShadeCount]float64{1.00, 0.84, 0.64, 0.44, 0.22, 0, 0.22, 0.46, 0.72, 1.00}

const anchorIndex = 5

// Params drive a single ramp generation
type Params struct {
	BaseColor Color
	Vibrancy  float64
	HueShift  float64
}

// DefaultParams returns base with vibrancy 50 and no hue shift
func DefaultParams(base Color) Params {
	return Params{BaseColor: base, Vibrancy: DefaultVibrancy, HueShift: DefaultHueShift}
}

// Shade is one generated step of a ramp
type Shade struct {
	Position   Position
	Color      Color
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Hex is the shade's canonical color string
func (s Shade) Hex() string {
	return s.Color.Hex()
}

// Ramp holds the ten shades ordered 50 through 900
type Ramp [ShadeCount]Shade

// Shade looks up the shade at position p
func (r Ramp) Shade(p Position) (Shade, bool) {
	for _, s := range r {
		if s.Position == p {
			return s, true
		}
	}
	return Shade{}, false
}

// GenerateShades builds the ramp for p. Vibrancy and hue shift are clamped to their
// ranges so the function is total.
func GenerateShades(p Params) Ramp {
	baseHue, baseSat, baseLight := p.BaseColor.HSL()

	hue := wrapHue(baseHue + clamp(p.HueShift, MinHueShift, MaxHueShift))
	sat := applyVibrancy(baseSat, clamp(p.Vibrancy, 0, 100))
	anchor := clamp(baseLight, anchorMin, anchorMax)

	var ramp Ramp
	for i, pos := range Positions {
		light := shadeLightness(i, anchor)
		ramp[i] = Shade{
			Position:   pos,
			Color:      HSLToColor(hue, sat, light),
			Hue:        hue,
			Saturation: sat,
			Lightness:  light,
		}
	}
	return ramp
}

// GenerateShadesHex parses baseColor and generates its ramp
func GenerateShadesHex(baseColor string, vibrancy, hueShift float64) (Ramp, error) {
	base, err := ParseHex(baseColor)
	if err != nil {
		return Ramp{}, err
	}
	return GenerateShades(Params{BaseColor: base, Vibrancy: vibrancy, HueShift: hueShift}), nil
}

// applyVibrancy keeps saturation at 50, scales it toward gray below and toward full
// saturation above.
func applyVibrancy(sat, vibrancy float64) float64 {
	if vibrancy <= DefaultVibrancy {
		return sat * vibrancy / DefaultVibrancy
	}
	return sat + (saturationMax-sat)*(vibrancy-DefaultVibrancy)/(100-DefaultVibrancy)
}

func shadeLightness(i int, anchor float64) float64 {
	w := curveWeights[i]
	switch {
	case i < anchorIndex:
		return anchor + (lightEnd-anchor)*w
	case i > anchorIndex:
		return anchor - (anchor-darkEnd)*w
	default:
		return anchor
	}
}
