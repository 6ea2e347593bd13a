// Package skills provides the skill taxonomy and word-boundary-aware skill extraction.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed taxonomy.json
var defaultTaxonomyJSON []byte

// Category is a named group of canonical skills.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy is the curated skill vocabulary: canonical skills grouped by
// category, synonym aliases that resolve to canonicals, and the recognized
// certification names. It is built once at initialization and is read-only
// afterwards, so it is safe to share across concurrent extractions.
type Taxonomy struct {
	Categories     []Category          `json:"categories"`
	Synonyms       map[string][]string `json:"synonyms,omitempty"` // canonical -> aliases
	Certifications []string            `json:"certifications,omitempty"`

	// Derived lookup tables, built by compile.
	terms       []matchTerm
	categoryOf  map[string]string // lowercased canonical -> category name
	canonicalOf map[string]string // lowercased term -> canonical skill
}

// matchTerm is one searchable string (a canonical skill or an alias) bound to
// its canonical skill.
type matchTerm struct {
	text      string // lowercased
	canonical string
}

// DefaultTaxonomy returns the embedded skill taxonomy.
func DefaultTaxonomy() *Taxonomy {
	tax, err := parseTaxonomy(defaultTaxonomyJSON)
	if err != nil {
		// The embedded taxonomy is validated by tests; a parse failure here
		// is a build defect.
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return tax
}

// LoadTaxonomy loads and validates a taxonomy from a JSON file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	tax, err := parseTaxonomy(data)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", path, err)
	}
	return tax, nil
}

func parseTaxonomy(data []byte) (*Taxonomy, error) {
	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}
	if err := tax.compile(); err != nil {
		return nil, err
	}
	return &tax, nil
}

// compile validates the taxonomy and builds the derived lookup tables.
func (t *Taxonomy) compile() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("taxonomy has no categories")
	}

	t.categoryOf = make(map[string]string)
	t.canonicalOf = make(map[string]string)
	t.terms = t.terms[:0]

	for _, cat := range t.Categories {
		if cat.Name == "" {
			return fmt.Errorf("taxonomy category with empty name")
		}
		for _, skill := range cat.Skills {
			if strings.TrimSpace(skill) == "" {
				return fmt.Errorf("taxonomy category %q contains an empty skill", cat.Name)
			}
			lower := strings.ToLower(skill)
			if _, dup := t.categoryOf[lower]; dup {
				continue // first category wins for duplicated skills
			}
			t.categoryOf[lower] = cat.Name
			t.canonicalOf[lower] = skill
			t.terms = append(t.terms, matchTerm{text: lower, canonical: skill})
		}
	}

	for canonical, aliases := range t.Synonyms {
		lower := strings.ToLower(canonical)
		if _, known := t.categoryOf[lower]; !known {
			return fmt.Errorf("synonym target %q is not a canonical skill", canonical)
		}
		resolved := t.canonicalOf[lower]
		for _, alias := range aliases {
			aliasLower := strings.ToLower(alias)
			if aliasLower == "" {
				return fmt.Errorf("canonical skill %q has an empty alias", canonical)
			}
			if _, taken := t.canonicalOf[aliasLower]; taken {
				continue // canonical names take precedence over aliases
			}
			t.canonicalOf[aliasLower] = resolved
			t.terms = append(t.terms, matchTerm{text: aliasLower, canonical: resolved})
		}
	}

	// Longer terms must be tried first so that a skill whose name contains a
	// shorter skill (javascript vs java) wins the overlapping span. Equal
	// lengths are ordered lexically for determinism.
	sort.Slice(t.terms, func(i, j int) bool {
		if len(t.terms[i].text) != len(t.terms[j].text) {
			return len(t.terms[i].text) > len(t.terms[j].text)
		}
		return t.terms[i].text < t.terms[j].text
	})

	return nil
}

// CategoryOf returns the category for a canonical skill, or "" if unknown.
func (t *Taxonomy) CategoryOf(skill string) string {
	return t.categoryOf[strings.ToLower(skill)]
}

// Canonical resolves a skill or alias to its canonical name, or "" if unknown.
func (t *Taxonomy) Canonical(term string) string {
	return t.canonicalOf[strings.ToLower(strings.TrimSpace(term))]
}
