// Package borough provides the static borough-context dataset used to
// ground planning requests. The dataset is embedded at build time; lookups
// are pure reads.
package borough

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed boroughs.yaml
var rawDataset []byte

// Context holds the planning context for one borough.
type Context struct {
	Name       string   `yaml:"name"`
	Population int      `yaml:"population"`
	FloodRisk  string   `yaml:"flood_risk"`
	Hubs       []string `yaml:"hubs"`
	Notes      string   `yaml:"notes"`
}

type dataset struct {
	Boroughs []Context `yaml:"boroughs"`
}

var boroughs []Context

func init() {
	var d dataset
	if err := yaml.Unmarshal(rawDataset, &d); err != nil {
		panic(fmt.Sprintf("borough: embedded dataset is invalid: %v", err))
	}
	boroughs = d.Boroughs
}

// All returns every borough context in dataset order.
func All() []Context {
	return boroughs
}

// Lookup returns the borough with the given name, case-insensitively.
func Lookup(name string) (Context, bool) {
	for _, b := range boroughs {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Context{}, false
}

// names implements fuzzy.Source over the dataset.
type names []Context

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }

// Search returns boroughs whose names fuzzy-match the query, best match
// first. An empty query returns nothing.
func Search(query string) []Context {
	matches := fuzzy.FindFrom(query, names(boroughs))
	results := make([]Context, 0, len(matches))
	for _, m := range matches {
		results = append(results, boroughs[m.Index])
	}
	return results
}

// Resolve finds a borough by exact name first, falling back to the best
// fuzzy match. It returns an error naming close alternatives when nothing
// matches well enough to act on.
func Resolve(name string) (Context, error) {
	if b, ok := Lookup(name); ok {
		return b, nil
	}
	matches := Search(name)
	if len(matches) == 0 {
		return Context{}, fmt.Errorf("unknown borough %q", name)
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	alternatives := make([]string, 0, 3)
	for i, m := range matches {
		if i == 3 {
			break
		}
		alternatives = append(alternatives, m.Name)
	}
	return Context{}, fmt.Errorf("ambiguous borough %q (did you mean %s?)", name, strings.Join(alternatives, ", "))
}

// Summary returns a one-line description used in chat context prompts.
func (c Context) Summary() string {
	return fmt.Sprintf("%s (pop. %d, flood risk %s; key hubs: %s)",
		c.Name, c.Population, c.FloodRisk, strings.Join(c.Hubs, ", "))
}
