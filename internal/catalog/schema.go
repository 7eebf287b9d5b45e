package catalog

// gamesSchema validates the embedded games.yaml before anything trusts
// its contents. A data file that drifts from this shape is a build-time
// mistake and should fail loudly at startup.
var gamesSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"games": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^[a-z][a-z0-9-]*$",
					},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"subtitle":    map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"arithmetic", "choice"},
					},
					"op": map[string]any{
						"type": "string",
						"enum": []any{"+", "-"},
					},
					"tier": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"grade": map[string]any{"type": "string"},
					"daily_goal": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
				},
				"required":             []any{"id", "title", "kind", "tier"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"games"},
	"additionalProperties": false,
}
