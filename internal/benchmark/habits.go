package benchmark

import "github.com/Skufu/nutririsk/internal/nutrient"

// Impact is a signed per-nutrient change in dietary coverage, as a fraction of RDA.
type Impact struct {
	Nutrient nutrient.Nutrient
	Delta    float64
}

// Pattern is a habit or lifestyle keyword and the coverage impacts it implies.
type Pattern struct {
	Key     string
	Impacts []Impact
}

func imp(n nutrient.Nutrient, d float64) Impact { return Impact{Nutrient: n, Delta: d} }

const (
	iron = nutrient.Iron
	b12  = nutrient.VitaminB12
	vitD = nutrient.VitaminD
	calc = nutrient.Calcium
	mag  = nutrient.Magnesium
	zinc = nutrient.Zinc
	prot = nutrient.Protein
)

var (
	skipImpacts  = []Impact{imp(iron, -0.2), imp(b12, -0.15), imp(prot, -0.15), imp(calc, -0.15)}
	rotiImpacts  = []Impact{imp(iron, 0.15), imp(prot, 0.1), imp(mag, 0.1)}
	dalImpacts   = []Impact{imp(iron, 0.25), imp(prot, 0.35), imp(zinc, 0.15), imp(mag, 0.2)}
	curdImpacts  = []Impact{imp(calc, 0.25), imp(b12, 0.15), imp(prot, 0.15)}
	fruitImpacts = []Impact{imp(mag, 0.1)}
)

// habitPatterns is scanned in order; every pattern contained in a habit
// string applies, so "skip breakfast" triggers both "skip" entries.
var habitPatterns = []Pattern{
	{"tea", []Impact{imp(iron, -0.15), imp(calc, 0.05)}},
	{"coffee", []Impact{imp(iron, -0.1), imp(calc, -0.05), imp(mag, -0.1)}},
	{"milk", []Impact{imp(calc, 0.3), imp(vitD, 0.15), imp(prot, 0.15), imp(b12, 0.2)}},
	{"eggs", []Impact{imp(prot, 0.2), imp(b12, 0.25), imp(vitD, 0.15), imp(iron, 0.1)}},
	{"fruit", fruitImpacts},
	{"cereal", []Impact{imp(iron, 0.15), imp(b12, 0.1), imp(zinc, 0.1)}},
	{"oats", []Impact{imp(iron, 0.15), imp(mag, 0.15), imp(zinc, 0.1), imp(prot, 0.1)}},
	{"poha", []Impact{imp(iron, 0.2)}},
	{"upma", []Impact{imp(iron, 0.1), imp(prot, 0.1)}},
	{"idli", []Impact{imp(prot, 0.15), imp(iron, 0.1), imp(b12, 0.05)}},
	{"dosa", []Impact{imp(prot, 0.1), imp(iron, 0.1), imp(b12, 0.05)}},
	{"paratha", []Impact{imp(prot, 0.1), imp(iron, 0.1)}},
	{"bread", []Impact{imp(iron, 0.08), imp(prot, 0.05)}},
	{"skip", skipImpacts},
	{"skip breakfast", skipImpacts},
	{"rice", []Impact{imp(iron, 0.1), imp(prot, 0.1)}},
	{"roti", rotiImpacts},
	{"chapati", rotiImpacts},
	{"dal", dalImpacts},
	{"lentils", dalImpacts},
	{"vegetables", []Impact{imp(iron, 0.15), imp(mag, 0.2)}},
	{"salad", []Impact{imp(iron, 0.1), imp(mag, 0.15)}},
	{"curd", curdImpacts},
	{"yogurt", curdImpacts},
	{"paneer", []Impact{imp(calc, 0.3), imp(prot, 0.25), imp(b12, 0.1)}},
	{"chicken", []Impact{imp(prot, 0.4), imp(iron, 0.2), imp(zinc, 0.3), imp(b12, 0.35)}},
	{"fish", []Impact{imp(prot, 0.35), imp(vitD, 0.3), imp(b12, 0.4), imp(zinc, 0.2)}},
	{"mutton", []Impact{imp(prot, 0.35), imp(iron, 0.3), imp(zinc, 0.35), imp(b12, 0.4)}},
	{"egg curry", []Impact{imp(prot, 0.25), imp(b12, 0.3), imp(iron, 0.15)}},
	{"fast food", []Impact{imp(iron, -0.1), imp(zinc, -0.1), imp(mag, -0.15), imp(prot, 0.1)}},
	{"outside food", []Impact{imp(iron, -0.05), imp(zinc, -0.05), imp(mag, -0.1)}},
	{"evening tea", []Impact{imp(iron, -0.1), imp(calc, 0.05)}},
	{"snacks", []Impact{imp(mag, -0.05), imp(zinc, -0.05)}},
	{"fruits", fruitImpacts},
	{"nuts", []Impact{imp(mag, 0.25), imp(zinc, 0.2), imp(prot, 0.15), imp(iron, 0.1)}},
	{"light dinner", []Impact{imp(prot, 0.15), imp(iron, 0.1), imp(calc, 0.1)}},
	{"heavy dinner", []Impact{imp(prot, 0.25), imp(iron, 0.2)}},
	{"late dinner", []Impact{imp(mag, -0.1), imp(vitD, -0.05)}},
	{"soup", []Impact{imp(prot, 0.1), imp(iron, 0.1), imp(mag, 0.1)}},
	{"khichdi", []Impact{imp(prot, 0.2), imp(iron, 0.15), imp(zinc, 0.1)}},
	{"sabzi", []Impact{imp(iron, 0.15), imp(mag, 0.15)}},
	{"buttermilk", []Impact{imp(calc, 0.15), imp(b12, 0.1), imp(prot, 0.1)}},
	{"lassi", []Impact{imp(calc, 0.2), imp(b12, 0.1), imp(prot, 0.15)}},
}

var lifestylePatterns = []Pattern{
	{"sedentary", []Impact{imp(vitD, -0.3), imp(mag, -0.2), imp(calc, -0.15)}},
	{"desk job", []Impact{imp(vitD, -0.25), imp(mag, -0.15)}},
	{"office work", []Impact{imp(vitD, -0.2), imp(mag, -0.1)}},
	{"active", []Impact{imp(vitD, 0.1), imp(mag, 0.1), imp(calc, 0.1)}},
	{"outdoor", []Impact{imp(vitD, 0.3), imp(mag, 0.1)}},
	{"gym", []Impact{imp(prot, 0.1), imp(mag, 0.15), imp(zinc, 0.1)}},
	{"exercise", []Impact{imp(prot, 0.1), imp(mag, 0.1), imp(calc, 0.1)}},
	{"smoking", []Impact{imp(vitD, -0.2), imp(calc, -0.2)}},
	{"alcohol", []Impact{imp(b12, -0.25), imp(mag, -0.2), imp(zinc, -0.15)}},
	{"stress", []Impact{imp(mag, -0.25), imp(b12, -0.15), imp(zinc, -0.1)}},
}

// HabitPatterns returns the food-habit table in scan order. Callers must not modify it.
func HabitPatterns() []Pattern { return habitPatterns }

// LifestylePatterns returns the lifestyle table in scan order. Callers must not modify it.
func LifestylePatterns() []Pattern { return lifestylePatterns }
