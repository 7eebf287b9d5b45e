package catalog

import (
	"fmt"

	"github.com/misaki/drillbox/internal/problem"
	"github.com/misaki/drillbox/internal/quiz"
)

// EngineConfig translates a catalog entry into the quiz engine
// configuration that runs it. Unknown kinds or tiers are configuration
// errors and fail before a session starts.
func EngineConfig(g Game) (quiz.Config, error) {
	tier := problem.Tier(g.Tier)

	cfg := quiz.Config{
		GameID:    g.ID,
		Title:     g.Title,
		Subtitle:  g.Subtitle,
		DailyGoal: g.DailyGoal,
	}

	switch g.Kind {
	case "arithmetic":
		gen := problem.Arithmetic{Op: problem.Op(g.Op)}
		if _, ok := problem.DefaultRanges[tier]; !ok {
			return quiz.Config{}, fmt.Errorf("game %q: %w: %q", g.ID, problem.ErrUnknownTier, g.Tier)
		}
		cfg.Build = func(src problem.Source) (*problem.Problem, error) {
			return gen.Generate(tier, src)
		}

	case "choice":
		gen := problem.Choice{Prompt: "Which shape is this?", Sets: shapeSets}
		if _, ok := shapeSets[tier]; !ok {
			return quiz.Config{}, fmt.Errorf("game %q: %w: %q", g.ID, problem.ErrUnknownTier, g.Tier)
		}
		cfg.Build = func(src problem.Source) (*problem.Problem, error) {
			return gen.Generate(tier, src)
		}

	default:
		return quiz.Config{}, fmt.Errorf("game %q: unknown kind %q", g.ID, g.Kind)
	}

	return cfg, nil
}
