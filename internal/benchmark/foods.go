package benchmark

import "github.com/Skufu/nutririsk/internal/nutrient"

type foodList struct {
	plant []string
	other []string
	all   []string // used regardless of diet when set
}

var foodSuggestions = [nutrient.Count]foodList{
	nutrient.Iron: {
		plant: []string{"Spinach", "Lentils", "Chickpeas", "Fortified cereals", "Pumpkin seeds"},
		other: []string{"Lean red meat", "Organ meats", "Shellfish", "Spinach", "Legumes"},
	},
	nutrient.VitaminB12: {
		plant: []string{"Fortified cereals", "Fortified nutritional yeast", "Dairy products", "Eggs", "Consider B12 supplementation"},
		other: []string{"Fish", "Meat", "Eggs", "Dairy", "Shellfish"},
	},
	nutrient.VitaminD: {
		all: []string{"Increase sun exposure (15-30 min)", "Fatty fish", "Fortified milk", "Egg yolks", "Mushrooms exposed to sunlight"},
	},
	nutrient.Calcium: {
		all: []string{"Dairy products", "Fortified plant milk", "Leafy greens", "Sesame seeds", "Ragi/Finger millet"},
	},
	nutrient.Magnesium: {
		all: []string{"Nuts (almonds, cashews)", "Seeds", "Whole grains", "Dark chocolate", "Spinach"},
	},
	nutrient.Zinc: {
		plant: []string{"Pumpkin seeds", "Chickpeas", "Cashews", "Fortified cereals", "Yogurt"},
		other: []string{"Oysters", "Red meat", "Poultry", "Beans", "Nuts"},
	},
	nutrient.Protein: {
		plant: []string{"Dal/Lentils", "Paneer", "Tofu", "Chickpeas", "Greek yogurt"},
		other: []string{"Chicken", "Fish", "Eggs", "Lean meat", "Dairy"},
	},
}

var dietaryTips = [nutrient.Count]string{
	nutrient.Iron:       "Pair iron-rich foods with vitamin C (citrus, tomatoes) to enhance absorption",
	nutrient.VitaminB12: "B12 is mainly from animal sources; vegetarians should consider fortified foods or supplements",
	nutrient.VitaminD:   "15-30 minutes of midday sun exposure helps natural vitamin D synthesis",
	nutrient.Calcium:    "Spread calcium intake throughout the day; avoid taking with iron supplements",
	nutrient.Magnesium:  "Soaking nuts and seeds can increase magnesium bioavailability",
	nutrient.Zinc:       "Animal sources have more bioavailable zinc; vegetarians need 50% more",
	nutrient.Protein:    "Combine legumes with grains for complete protein in vegetarian diets",
}

// FoodSuggestions returns foods rich in n suited to diet d, as a fresh slice.
func FoodSuggestions(n nutrient.Nutrient, d Diet) []string {
	if !n.Valid() {
		return nil
	}
	f := foodSuggestions[n]
	var src []string
	switch {
	case f.all != nil:
		src = f.all
	case d.PlantBased():
		src = f.plant
	default:
		src = f.other
	}
	return append([]string(nil), src...)
}

// DietaryTip returns an absorption tip for n.
func DietaryTip(n nutrient.Nutrient) string {
	if !n.Valid() {
		return "Maintain a balanced diet with diverse food sources"
	}
	return dietaryTips[n]
}
