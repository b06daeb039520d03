// Package assessment turns a person's demographic, habit, regional and
// questionnaire answers into a ranked per-nutrient deficiency risk report.
//
// Assess is a pure function of its Input and the read-only tables in package
// benchmark. It performs no I/O and may be called concurrently.
package assessment

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Skufu/nutririsk/internal/benchmark"
)

// Value is a leniently decoded JSON scalar. Strings, numbers and booleans are
// all kept as text; null and absent fields leave the Value unset.
type Value struct {
	text string
	set  bool
}

// Text returns a set Value holding s.
func Text(s string) Value { return Value{text: s, set: true} }

// Number returns a set Value holding f.
func Number(f float64) Value { return Text(strconv.FormatFloat(f, 'f', -1, 64)) }

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Value{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	*v = Text(string(b))
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.text)
}

// IsSet reports whether the field was present and not null.
func (v Value) IsSet() bool { return v.set }

// Blank reports whether the value is unset or only whitespace.
func (v Value) Blank() bool { return strings.TrimSpace(v.text) == "" }

func (v Value) String() string { return v.text }

// Float parses the value with ParseNumber.
func (v Value) Float() (float64, bool) { return ParseNumber(v.text) }

// FloatOr returns def when the value is unset. A set value that does not
// parse yields 0.
func (v Value) FloatOr(def float64) float64 {
	if !v.set {
		return def
	}
	f, _ := ParseNumber(v.text)
	return f
}

// StringOr returns def when the value is unset or blank.
func (v Value) StringOr(def string) string {
	if v.Blank() {
		return def
	}
	return strings.TrimSpace(v.text)
}

// ParseNumber reads a decimal number, ignoring thousands separators and
// surrounding whitespace. Anything else, including NaN and infinities,
// yields 0 and false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// RawInput is the request body as received.
type RawInput struct {
	Age               Value            `json:"age"`
	Gender            Value            `json:"gender"`
	HeightCM          Value            `json:"height_cm"`
	WeightKG          Value            `json:"weight_kg"`
	HealthCategory    Value            `json:"health_category"`
	DietaryPreference Value            `json:"dietary_preference"`
	Location          Value            `json:"location"`
	MorningHabits     Value            `json:"morning_habits"`
	AfternoonHabits   Value            `json:"afternoon_habits"`
	EveningHabits     Value            `json:"evening_habits"`
	Questionnaire     map[string]Value `json:"questionnaire_responses"`
}

// Questionnaire keys understood by the symptom analyzer.
const (
	QFatigue      = "fatigue"
	QHairFall     = "hair_fall"
	QMuscleCramps = "muscle_cramps"
	QSunExposure  = "sun_exposure_minutes_per_day"
	QDairy        = "dairy_servings_per_day"
	QGreens       = "green_leafy_frequency_per_week"
	QWaterSource  = "water_source"
)

const (
	defaultSunMinutes     = 30
	defaultDairyServings  = 1
	defaultGreensPerWeek  = 3
	defaultAge            = 25
	defaultHeightCM       = 160
	defaultWeightKG       = 60
	defaultGender         = "female"
	defaultHealthCategory = "adult"
	defaultDiet           = "vegetarian"
)

// Questionnaire holds the typed symptom and lifestyle answers. SunReported
// is false when no sun exposure answer was given, in which case SunMinutes
// holds the default.
type Questionnaire struct {
	Fatigue       string  `json:"fatigue"`
	HairFall      string  `json:"hair_fall"`
	MuscleCramps  string  `json:"muscle_cramps"`
	SunMinutes    float64 `json:"sun_minutes"`
	SunReported   bool    `json:"sun_reported"`
	DairyServings float64 `json:"dairy_servings"`
	GreensPerWeek float64 `json:"greens_per_week"`
	WaterSource   string  `json:"water_source"`
}

// Period names the time of day a habit string describes.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	periodCount
)

var periodNames = [periodCount]string{"morning", "afternoon", "evening"}

func (p Period) String() string { return periodNames[p] }

// Input is the normalized assessment input. Every field has a usable value.
type Input struct {
	Age               int                 `json:"age"`
	Gender            string              `json:"gender"`
	HeightCM          float64             `json:"height_cm"`
	WeightKG          float64             `json:"weight_kg"`
	HealthCategory    string              `json:"health_category"`
	LifeStage         benchmark.LifeStage `json:"life_stage"`
	DietaryPreference string              `json:"dietary_preference"`
	Diet              benchmark.Diet      `json:"diet"`
	Location          string              `json:"location"`
	Habits            [periodCount]string `json:"habits"`
	Questionnaire     Questionnaire       `json:"questionnaire"`
}

// Normalize coerces raw into an Input. It never fails: a missing or
// malformed field takes its documented default.
func Normalize(raw RawInput) Input {
	in := Input{
		Age:               int(raw.Age.FloatOr(defaultAge)),
		Gender:            strings.ToLower(raw.Gender.StringOr(defaultGender)),
		HeightCM:          raw.HeightCM.FloatOr(defaultHeightCM),
		WeightKG:          raw.WeightKG.FloatOr(defaultWeightKG),
		HealthCategory:    raw.HealthCategory.StringOr(defaultHealthCategory),
		DietaryPreference: raw.DietaryPreference.StringOr(defaultDiet),
		Location:          strings.TrimSpace(raw.Location.String()),
	}
	in.LifeStage = benchmark.ParseLifeStage(in.HealthCategory)
	in.Diet = benchmark.MatchDiet(in.DietaryPreference)
	in.Habits[Morning] = raw.MorningHabits.String()
	in.Habits[Afternoon] = raw.AfternoonHabits.String()
	in.Habits[Evening] = raw.EveningHabits.String()

	q := raw.Questionnaire
	sun := q[QSunExposure]
	in.Questionnaire = Questionnaire{
		Fatigue:       answer(q[QFatigue]),
		HairFall:      answer(q[QHairFall]),
		MuscleCramps:  answer(q[QMuscleCramps]),
		SunMinutes:    sun.FloatOr(defaultSunMinutes),
		SunReported:   !sun.Blank(),
		DairyServings: q[QDairy].FloatOr(defaultDairyServings),
		GreensPerWeek: q[QGreens].FloatOr(defaultGreensPerWeek),
		WaterSource:   answer(q[QWaterSource]),
	}
	return in
}

func answer(v Value) string {
	return strings.ToLower(strings.TrimSpace(v.String()))
}
