package benchmark

import "github.com/Skufu/nutririsk/internal/nutrient"

// LabTest is the recommended blood work for confirming a deficiency.
type LabTest struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Description string `json:"description"`
}

var labTests = [nutrient.Count]LabTest{
	nutrient.Iron: {
		Primary:     "Complete Blood Count (CBC) with Serum Ferritin",
		Secondary:   "Serum Iron, TIBC (Total Iron Binding Capacity)",
		Description: "Ferritin is the most sensitive marker for iron stores",
	},
	nutrient.VitaminB12: {
		Primary:     "Serum Vitamin B12",
		Secondary:   "Methylmalonic Acid (MMA), Homocysteine",
		Description: "MMA is more accurate for tissue-level B12 status",
	},
	nutrient.VitaminD: {
		Primary:     "25-Hydroxy Vitamin D (25-OH Vitamin D)",
		Secondary:   "Parathyroid Hormone (PTH)",
		Description: "25-OH Vitamin D is the standard marker",
	},
	nutrient.Calcium: {
		Primary:     "Serum Calcium, Ionized Calcium",
		Secondary:   "PTH, Vitamin D",
		Description: "Ionized calcium is more accurate than total calcium",
	},
	nutrient.Magnesium: {
		Primary:     "Serum Magnesium",
		Secondary:   "RBC Magnesium",
		Description: "RBC magnesium reflects intracellular stores better",
	},
	nutrient.Zinc: {
		Primary:     "Serum Zinc",
		Secondary:   "Alkaline Phosphatase",
		Description: "Serum zinc can be affected by recent meals",
	},
	nutrient.Protein: {
		Primary:     "Serum Total Protein, Albumin",
		Secondary:   "Prealbumin, Transferrin",
		Description: "Albumin reflects protein status over weeks",
	},
}

var defaultLabTest = LabTest{
	Primary:     "Comprehensive metabolic panel",
	Secondary:   "Consult healthcare provider",
	Description: "General screening recommended",
}

// RecommendedTest returns the lab test for n, or a general panel for an unknown nutrient.
func RecommendedTest(n nutrient.Nutrient) LabTest {
	if !n.Valid() {
		return defaultLabTest
	}
	return labTests[n]
}
