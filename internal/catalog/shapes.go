package catalog

import "github.com/misaki/drillbox/internal/problem"

// shapeSets are the item pools for the shape recognition games.
var shapeSets = map[problem.Tier][]problem.Item{
	problem.TierEasy: {
		{Glyph: "●", Name: "circle"},
		{Glyph: "▲", Name: "triangle"},
		{Glyph: "■", Name: "square"},
		{Glyph: "★", Name: "star"},
		{Glyph: "◆", Name: "diamond"},
		{Glyph: "♥", Name: "heart"},
	},
	problem.TierMedium: {
		{Glyph: "●", Name: "circle"},
		{Glyph: "▲", Name: "triangle"},
		{Glyph: "■", Name: "square"},
		{Glyph: "▬", Name: "rectangle"},
		{Glyph: "◆", Name: "diamond"},
		{Glyph: "⬟", Name: "pentagon"},
		{Glyph: "⬢", Name: "hexagon"},
		{Glyph: "⭘", Name: "oval"},
	},
	problem.TierHard: {
		{Glyph: "⬟", Name: "pentagon"},
		{Glyph: "⬢", Name: "hexagon"},
		{Glyph: "⯃", Name: "octagon"},
		{Glyph: "▱", Name: "parallelogram"},
		{Glyph: "⏢", Name: "trapezoid"},
		{Glyph: "▷", Name: "right triangle"},
		{Glyph: "✦", Name: "four-pointed star"},
	},
}
