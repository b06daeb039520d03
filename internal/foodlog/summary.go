package foodlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Skufu/nutririsk/internal/benchmark"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

// ErrNotEnoughData is returned when a user has no logs in the feature window.
var ErrNotEnoughData = errors.New("not enough logged data")

// featureWindow is the number of days, ending today, that feed the classifier.
const featureWindow = 7

// Intake is the iron (mg), calcium (mg) and protein (g) eaten.
type Intake struct {
	Iron    float64 `json:"iron"`
	Calcium float64 `json:"calcium"`
	Protein float64 `json:"protein"`
}

func (i *Intake) add(iron, calcium, protein, quantity float64) {
	factor := quantity / 100
	i.Iron += iron * factor
	i.Calcium += calcium * factor
	i.Protein += protein * factor
}

func (i Intake) rounded() Intake {
	return Intake{Iron: round2(i.Iron), Calcium: round2(i.Calcium), Protein: round2(i.Protein)}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// DaySummary is one day's rounded intake.
type DaySummary struct {
	Date string `json:"date"`
	Intake
}

// intakeByDay sums the user's intake per log date over [from, to].
func (s *Store) intakeByDay(ctx context.Context, userID string, from, to time.Time) (map[string]Intake, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT l.log_date, f.iron, f.calcium, f.protein, l.quantity
		FROM food_logs l
		JOIN food_items f ON f.id = l.food_id
		WHERE l.user_id = ? AND l.log_date >= ? AND l.log_date <= ?`),
		userID, from.Format(dateLayout), to.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("query intake: %w", err)
	}
	defer rows.Close()

	days := make(map[string]Intake)
	for rows.Next() {
		var date string
		var iron, calcium, protein, amount float64
		if err := rows.Scan(&date, &iron, &calcium, &protein, &amount); err != nil {
			return nil, fmt.Errorf("scan intake: %w", err)
		}
		day := days[date]
		day.add(iron, calcium, protein, amount)
		days[date] = day
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intake: %w", err)
	}
	return days, nil
}

func (s *Store) todayIntake(ctx context.Context, userID string) (string, Intake, error) {
	today := s.today()
	days, err := s.intakeByDay(ctx, userID, today, today)
	if err != nil {
		return "", Intake{}, err
	}
	date := today.Format(dateLayout)
	return date, days[date], nil
}

// Daily returns today's intake.
func (s *Store) Daily(ctx context.Context, userID string) (DaySummary, error) {
	date, in, err := s.todayIntake(ctx, userID)
	if err != nil {
		return DaySummary{}, err
	}
	return DaySummary{Date: date, Intake: in.rounded()}, nil
}

func grade(in Intake, target benchmark.DailyTarget) Levels {
	return Levels{
		Iron:    Grade(in.Iron, target.Iron),
		Calcium: Grade(in.Calcium, target.Calcium),
		Protein: Grade(in.Protein, target.Protein),
	}
}

// Weekly returns the seven days ending today, oldest first. Days without
// logs are reported as zero.
func (s *Store) Weekly(ctx context.Context, userID string) ([]DaySummary, error) {
	today := s.today()
	from := today.AddDate(0, 0, -(featureWindow - 1))
	days, err := s.intakeByDay(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	out := make([]DaySummary, 0, featureWindow)
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		out = append(out, DaySummary{Date: date, Intake: days[date].rounded()})
	}
	return out, nil
}

// Features averages the last seven days of intake for the risk classifier.
// Consistency is the share of those days with at least one log.
func (s *Store) Features(ctx context.Context, userID string) (riskmodel.Features, error) {
	today := s.today()
	days, err := s.intakeByDay(ctx, userID, today.AddDate(0, 0, -(featureWindow-1)), today)
	if err != nil {
		return riskmodel.Features{}, err
	}
	if len(days) == 0 {
		return riskmodel.Features{}, ErrNotEnoughData
	}
	var total Intake
	for _, d := range days {
		total.Iron += d.Iron
		total.Calcium += d.Calcium
		total.Protein += d.Protein
	}
	return riskmodel.Features{
		AvgIron:     round2(total.Iron / featureWindow),
		AvgCalcium:  round2(total.Calcium / featureWindow),
		AvgProtein:  round2(total.Protein / featureWindow),
		Consistency: round2(float64(len(days)) / featureWindow),
	}, nil
}

// Status grades intake against a daily target.
type Status string

const (
	StatusLow      Status = "LOW"
	StatusAdequate Status = "ADEQUATE"
	StatusHigh     Status = "HIGH"
)

// Grade is LOW below 80% of target, HIGH above 120%, ADEQUATE otherwise.
func Grade(intake, target float64) Status {
	switch {
	case intake < 0.8*target:
		return StatusLow
	case intake > 1.2*target:
		return StatusHigh
	default:
		return StatusAdequate
	}
}

// Levels is the per-nutrient status of a day's intake.
type Levels struct {
	Iron    Status `json:"iron"`
	Calcium Status `json:"calcium"`
	Protein Status `json:"protein"`
}

// DeficiencyReport grades today's intake for a life stage and suggests
// regional foods for anything LOW.
type DeficiencyReport struct {
	LifeStage     benchmark.LifeStage `json:"life_stage"`
	Region        string              `json:"region"`
	Intake        Intake              `json:"intake"`
	Status        Levels              `json:"status"`
	Suggestions   map[string][]string `json:"regional_food_suggestions"`
	AIExplanation string              `json:"ai_explanation"`
	Disclaimer    string              `json:"disclaimer"`
}

// DeficiencyDisclaimer accompanies every deficiency report.
const DeficiencyDisclaimer = "This is not medical advice."

const maxRegionalFoods = 5

// Deficiency grades today's intake against the target for lifeStage, which
// falls back to adult when unrecognised. AIExplanation is left for the caller.
func (s *Store) Deficiency(ctx context.Context, userID, lifeStage, state string) (DeficiencyReport, error) {
	stage, target := benchmark.TargetFor(lifeStage)
	_, in, err := s.todayIntake(ctx, userID)
	if err != nil {
		return DeficiencyReport{}, err
	}
	levels := grade(in, target)

	low := lowNutrients(levels)
	suggestions := make(map[string][]string, len(low))
	if len(low) > 0 {
		foods, err := s.RegionalFoods(ctx, state)
		if err != nil {
			return DeficiencyReport{}, err
		}
		for _, n := range low {
			suggestions[n] = pickFoods(foods, n)
		}
	}

	return DeficiencyReport{
		LifeStage:   stage,
		Region:      state,
		Intake:      in.rounded(),
		Status:      levels,
		Suggestions: suggestions,
		Disclaimer:  DeficiencyDisclaimer,
	}, nil
}

func lowNutrients(l Levels) []string {
	var out []string
	if l.Iron == StatusLow {
		out = append(out, "iron")
	}
	if l.Calcium == StatusLow {
		out = append(out, "calcium")
	}
	if l.Protein == StatusLow {
		out = append(out, "protein")
	}
	return out
}

// pickFoods returns up to five catalogue names with a positive amount of n.
func pickFoods(foods []FoodItem, n string) []string {
	out := []string{}
	for _, f := range foods {
		if len(out) == maxRegionalFoods {
			break
		}
		if amountOf(f, n) > 0 {
			out = append(out, f.Name)
		}
	}
	return out
}

func amountOf(f FoodItem, n string) float64 {
	switch n {
	case "iron":
		return f.Iron
	case "calcium":
		return f.Calcium
	case "protein":
		return f.Protein
	}
	return 0
}

// RegionalRecommendations is the response for today's shortfalls against
// the adult target.
type RegionalRecommendations struct {
	State           string              `json:"state"`
	Recommendations map[string][]string `json:"recommendations"`
}

// Regional lists foods from state for each nutrient below 80% of the adult
// target today.
func (s *Store) Regional(ctx context.Context, userID, state string) (RegionalRecommendations, error) {
	_, target := benchmark.TargetFor(string(benchmark.LifeStageAdult))
	_, in, err := s.todayIntake(ctx, userID)
	if err != nil {
		return RegionalRecommendations{}, err
	}
	out := RegionalRecommendations{State: state, Recommendations: map[string][]string{}}
	low := lowNutrients(grade(in, target))
	if len(low) == 0 {
		return out, nil
	}
	foods, err := s.RegionalFoods(ctx, state)
	if err != nil {
		return RegionalRecommendations{}, err
	}
	for _, n := range low {
		out.Recommendations[n] = pickFoods(foods, n)
	}
	return out, nil
}
