package problem

import "fmt"

// maxChoices is the number of options presented for a choice problem
// when the item set is large enough.
const maxChoices = 4

// Item is one recognizable thing in a choice set: a glyph rendered as
// the prompt and the name the learner must pick.
type Item struct {
	Glyph string
	Name  string
}

// Choice generates multiple-choice recognition problems from tiered
// item sets (e.g. shapes).
type Choice struct {
	// Prompt is the question stem; the correct item's glyph is appended.
	Prompt string

	// Sets maps each supported tier to its item pool.
	Sets map[Tier][]Item
}

// Generate draws one correct item uniformly from the tier's set, then
// min(4, n)-1 distinct decoys without replacement from the rest, and
// shuffles the combined options. Answer is the index of the correct
// option after the shuffle.
func (c Choice) Generate(tier Tier, src Source) (*Problem, error) {
	set, ok := c.Sets[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: tier %q", ErrEmptySet, tier)
	}

	correct := set[intn(src, len(set))]

	// Decoys: shuffle the remaining names and take what we need.
	rest := make([]string, 0, len(set)-1)
	for _, it := range set {
		if it.Name != correct.Name {
			rest = append(rest, it.Name)
		}
	}
	shuffle(src, rest)

	want := maxChoices
	if len(set) < want {
		want = len(set)
	}
	choices := append(rest[:want-1:want-1], correct.Name)
	shuffle(src, choices)

	answer := -1
	for i, name := range choices {
		if name == correct.Name {
			answer = i
			break
		}
	}

	return &Problem{
		Answer:  answer,
		Text:    fmt.Sprintf("%s  %s", c.Prompt, correct.Glyph),
		Choices: choices,
	}, nil
}
