// Package catalog enumerates the available mini-games from an embedded
// data file. The catalog is loaded once, validated against a schema,
// and handed around as an immutable value with no module-scope state.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed games.yaml
var gamesYAML []byte

// Game is one catalog entry.
type Game struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Op          string `yaml:"op"`
	Tier        string `yaml:"tier"`
	Grade       string `yaml:"grade"`
	DailyGoal   int    `yaml:"daily_goal"`
}

// Catalog is the validated, read-only game listing.
type Catalog struct {
	games []Game
	byID  map[string]Game
}

type gamesFile struct {
	Games []Game `yaml:"games"`
}

// Load parses and validates the embedded game listing.
func Load() (*Catalog, error) {
	return load(gamesYAML)
}

func load(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse games data: %w", err)
	}

	byID := make(map[string]Game, len(file.Games))
	for _, g := range file.Games {
		if _, dup := byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate game id %q", g.ID)
		}
		if g.Kind == "arithmetic" && g.Op == "" {
			return nil, fmt.Errorf("game %q: arithmetic games need an op", g.ID)
		}
		byID[g.ID] = g
	}

	return &Catalog{games: file.Games, byID: byID}, nil
}

// Games returns the catalog entries in file order.
func (c *Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

// Get looks up a game by id.
func (c *Catalog) Get(id string) (Game, error) {
	g, ok := c.byID[id]
	if !ok {
		return Game{}, fmt.Errorf("unknown game %q", id)
	}
	return g, nil
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.games)
}

// validateSchema checks the raw YAML against gamesSchema. The schema
// library wants decoded JSON values, so the YAML document round-trips
// through encoding/json first.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse games data: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert games data: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("convert games data: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("games data failed schema validation: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(gamesSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal games schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse games schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://games.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add games schema: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile games schema: %w", err)
	}
	return compiled, nil
}
