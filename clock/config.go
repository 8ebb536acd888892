package clock

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NumberText selects the numeral set drawn on the dial.
type NumberText string

const (
	NumberArabic NumberText = "Arabic"
	NumberRoman  NumberText = "Roman"
)

// Normalize maps the short spellings used by older style files ("Arab",
// "Roma") onto the canonical values. Anything unknown becomes Arabic.
func (t NumberText) Normalize() NumberText {
	switch t {
	case NumberRoman, "Roma":
		return NumberRoman
	default:
		return NumberArabic
	}
}

// NumberStyle selects whether numerals are outlined or filled.
type NumberStyle string

const (
	NumberStroke NumberStyle = "stroke"
	NumberFill   NumberStyle = "fill"
)

// StyleConfig is the resolved style of a clock. Lengths are pixels,
// percentages are fractions of the dial radius in [0, 1] and colours are CSS
// hex strings.
type StyleConfig struct {
	DialRadius      float64 `yaml:"dialRadius"`
	DialStroke      string  `yaml:"dialStroke"`
	DialStrokeWidth float64 `yaml:"dialStrokeWidth"`

	NumberShow  bool        `yaml:"numberShow"`
	NumberText  NumberText  `yaml:"numberText"`
	NumberStyle NumberStyle `yaml:"numberStyle"`
	NumberColor string      `yaml:"numberColor"`

	HourPercent float64 `yaml:"hourPercent"`
	// HourTail is kept for style-file compatibility. Tails are not drawn.
	HourTail        float64 `yaml:"hourTail"`
	HourStroke      string  `yaml:"hourStroke"`
	HourStrokeWidth float64 `yaml:"hourStrokeWidth"`

	MinutePercent     float64 `yaml:"minutePercent"`
	MinuteTail        float64 `yaml:"minuteTail"`
	MinuteStroke      string  `yaml:"minuteStroke"`
	MinuteStrokeWidth float64 `yaml:"minuteStrokeWidth"`

	SecondPercent     float64 `yaml:"secondPercent"`
	SecondTail        float64 `yaml:"secondTail"`
	SecondStroke      string  `yaml:"secondStroke"`
	SecondStrokeWidth float64 `yaml:"secondStrokeWidth"`
}

// Overrides is a partial StyleConfig. Nil fields keep their default.
type Overrides struct {
	DialRadius      *float64 `yaml:"dialRadius"`
	DialStroke      *string  `yaml:"dialStroke"`
	DialStrokeWidth *float64 `yaml:"dialStrokeWidth"`

	NumberShow  *bool        `yaml:"numberShow"`
	NumberText  *NumberText  `yaml:"numberText"`
	NumberStyle *NumberStyle `yaml:"numberStyle"`
	NumberColor *string      `yaml:"numberColor"`

	HourPercent     *float64 `yaml:"hourPercent"`
	HourTail        *float64 `yaml:"hourTail"`
	HourStroke      *string  `yaml:"hourStroke"`
	HourStrokeWidth *float64 `yaml:"hourStrokeWidth"`

	MinutePercent     *float64 `yaml:"minutePercent"`
	MinuteTail        *float64 `yaml:"minuteTail"`
	MinuteStroke      *string  `yaml:"minuteStroke"`
	MinuteStrokeWidth *float64 `yaml:"minuteStrokeWidth"`

	SecondPercent     *float64 `yaml:"secondPercent"`
	SecondTail        *float64 `yaml:"secondTail"`
	SecondStroke      *string  `yaml:"secondStroke"`
	SecondStrokeWidth *float64 `yaml:"secondStrokeWidth"`
}

var defaultConfig = StyleConfig{
	DialRadius:      75,
	DialStroke:      "#777777",
	DialStrokeWidth: 2,

	NumberShow:  true,
	NumberText:  NumberArabic,
	NumberStyle: NumberStroke,
	NumberColor: "#333333",

	HourPercent:     0.5,
	HourTail:        3,
	HourStroke:      "#555555",
	HourStrokeWidth: 4,

	MinutePercent:     0.6,
	MinuteTail:        4,
	MinuteStroke:      "#444444",
	MinuteStrokeWidth: 3,

	SecondPercent:     0.7,
	SecondTail:        5,
	SecondStroke:      "#555555",
	SecondStrokeWidth: 2,
}

// DefaultConfig returns a copy of the default style.
func DefaultConfig() StyleConfig { return defaultConfig }

// Resolve merges o over the defaults. A nil o yields the defaults.
func Resolve(o *Overrides) StyleConfig {
	if o == nil {
		return DefaultConfig()
	}
	return MergeShallow(*o, DefaultConfig())
}

var keys = []string{
	"dialRadius", "dialStroke", "dialStrokeWidth",
	"numberShow", "numberText", "numberStyle", "numberColor",
	"hourPercent", "hourTail", "hourStroke", "hourStrokeWidth",
	"minutePercent", "minuteTail", "minuteStroke", "minuteStrokeWidth",
	"secondPercent", "secondTail", "secondStroke", "secondStrokeWidth",
}

var numericKeys = []string{
	"dialRadius", "dialStrokeWidth",
	"hourPercent", "hourTail", "hourStrokeWidth",
	"minutePercent", "minuteTail", "minuteStrokeWidth",
	"secondPercent", "secondTail", "secondStrokeWidth",
}

// Keys returns every style key in declaration order.
func Keys() []string { return append([]string(nil), keys...) }

// NumericKeys returns the keys whose values are numbers.
func NumericKeys() []string { return append([]string(nil), numericKeys...) }

// IsKey reports whether key names a style property.
func IsKey(key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// OverridesFromMap decodes a generic record keyed by style keys into
// Overrides. Unknown keys are ignored. Text-typed numbers must go through
// CoerceNumeric first.
func OverridesFromMap(record map[string]any) (Overrides, error) {
	var out Overrides
	if len(record) == 0 {
		return out, nil
	}
	var node yaml.Node
	if err := node.Encode(record); err != nil {
		return Overrides{}, fmt.Errorf("encode style record: %w", err)
	}
	if err := node.Decode(&out); err != nil {
		return Overrides{}, fmt.Errorf("decode style record: %w", err)
	}
	return out, nil
}

var numerals = map[NumberText][12]string{
	NumberArabic: {"12", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11"},
	NumberRoman:  {"XII", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI"},
}

// Numerals returns the twelve labels for t, starting at 12 o'clock and going
// clockwise.
func Numerals(t NumberText) [12]string {
	return numerals[t.Normalize()]
}
