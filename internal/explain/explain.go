// Package explain produces short plain-language explanations of assessment
// results with a chat-completion model. Every failure degrades to Fallback.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Skufu/nutririsk/internal/assessment"
	"github.com/Skufu/nutririsk/internal/exercise"
	"github.com/Skufu/nutririsk/internal/foodlog"
	"github.com/Skufu/nutririsk/internal/logger"
)

// Fallback is returned whenever no explanation could be produced.
const Fallback = "AI explanation unavailable."

const (
	defaultTimeout = 20 * time.Second
	temperature    = 0.3
	maxRisksListed = 4
)

// Generator returns a completion for a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// OpenAI is a Generator backed by any OpenAI-compatible endpoint.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI returns a Generator for model. An empty baseURL uses the
// default OpenAI endpoint.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAI{client: openai.NewClient(opts...), model: model}
}

func (o *OpenAI) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Explainer wraps a Generator with prompts, a timeout and the fallback.
// A nil Explainer or one without a Generator always returns Fallback.
type Explainer struct {
	gen     Generator
	log     *logger.Logger
	timeout time.Duration
}

func New(gen Generator, log *logger.Logger) *Explainer {
	if log == nil {
		log = logger.Nop()
	}
	return &Explainer{gen: gen, log: log, timeout: defaultTimeout}
}

// Enabled reports whether explanations can be generated at all.
func (e *Explainer) Enabled() bool { return e != nil && e.gen != nil }

func (e *Explainer) run(ctx context.Context, kind, system, user string) string {
	if !e.Enabled() {
		return Fallback
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	text, err := e.gen.Generate(ctx, system, user)
	if err != nil {
		e.log.Warn("explanation failed", "kind", kind, "error", err, "elapsed", time.Since(start))
		return Fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		e.log.Warn("explanation empty", "kind", kind)
		return Fallback
	}
	return text
}

const nutritionSystem = `You are a nutrition assistant writing for a general audience.
Do not diagnose any disease. Do not suggest medicines or supplements by brand.
Keep the explanation concise and friendly, and end with a short safety disclaimer.`

// Assessment explains the highest risks of an assessment result.
func (e *Explainer) Assessment(ctx context.Context, in assessment.Input, r *assessment.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Person: %s.\n", r.DemographicSummary)
	if in.Location != "" {
		fmt.Fprintf(&b, "Region: %s.\n", in.Location)
	}
	b.WriteString("Highest deficiency risks:\n")
	for i, rec := range r.DeficiencyRisks {
		if i == maxRisksListed {
			break
		}
		fmt.Fprintf(&b, "- %s: %s risk (%.1f%%); causes: %s\n",
			rec.Nutrient, rec.RiskLevel, rec.ProbabilityPercent, strings.Join(rec.PrimaryCauses, "; "))
	}
	b.WriteString("\nExplain in simple language which nutrients look low, why that matters, " +
		"and everyday foods that help.")
	return e.run(ctx, "assessment", nutritionSystem, b.String())
}

// Deficiency explains a food-log deficiency report.
func (e *Explainer) Deficiency(ctx context.Context, r foodlog.DeficiencyReport) string {
	user := fmt.Sprintf("Life stage: %s\nRegion: %s\nNutrient status: iron %s, calcium %s, protein %s\n\n"+
		"Explain which nutrients are low, why this matters for this life stage, "+
		"and food suggestions common in this region.",
		r.LifeStage, regionOrUnknown(r.Region), r.Status.Iron, r.Status.Calcium, r.Status.Protein)
	return e.run(ctx, "deficiency", nutritionSystem, user)
}

const exerciseSystem = `You are a health assistant explaining a fixed exercise plan.
Do not give medical advice. Do not suggest other exercises and do not change
the intensity or duration. Keep it short and reassuring, and end with a safety disclaimer.`

// Exercise explains why plan suits the life stage and risk label.
func (e *Explainer) Exercise(ctx context.Context, lifeStage, riskLevel, region string, plan exercise.Plan) string {
	user := fmt.Sprintf("Life stage: %s\nNutrition risk level: %s\nRegion: %s\n"+
		"Plan: %s, %s at %s intensity (%s). Notes: %s\n\n"+
		"Explain why this kind of exercise is suitable, how it helps at this risk level, and general safety reminders.",
		lifeStage, riskLevel, regionOrUnknown(region),
		plan.Type, plan.Duration, plan.Intensity, strings.Join(plan.Examples, ", "), plan.Notes)
	return e.run(ctx, "exercise", exerciseSystem, user)
}

func regionOrUnknown(region string) string {
	if strings.TrimSpace(region) == "" {
		return "not specified"
	}
	return region
}
