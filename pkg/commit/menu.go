package commit

import (
	"slices"
	"sort"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/samber/lo"
)

// Choice is a single entry of the commit type menu.
type Choice struct {
	Key         string
	Value       string
	Description string
	Hidden      bool
}

// Choices returns the type menu in list order. List entries without a
// matching type definition are skipped.
func (c *Config) Choices() []Choice {
	if c == nil {
		return nil
	}

	choices := make([]Choice, 0, len(c.List))
	for _, key := range c.List {
		info, ok := c.Types[key]
		if !ok {
			continue
		}
		choices = append(choices, Choice{
			Key:         key,
			Value:       info.Value,
			Description: info.Description,
		})
	}

	return choices
}

// HiddenTypes returns the sorted keys of types that are defined but not
// part of the menu list.
func (c *Config) HiddenTypes() []string {
	if c == nil {
		return nil
	}

	hidden := lo.Without(lo.Keys(c.Types), c.List...)
	sort.Strings(hidden)

	return hidden
}

// AllChoices returns the menu followed by the hidden types.
func (c *Config) AllChoices() []Choice {
	choices := c.Choices()

	for _, key := range c.HiddenTypes() {
		info := c.Types[key]
		choices = append(choices, Choice{
			Key:         key,
			Value:       info.Value,
			Description: info.Description,
			Hidden:      true,
		})
	}

	return choices
}

// HasQuestion reports whether the wizard should ask q.
func (c *Config) HasQuestion(q Question) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Questions, q)
}

// ScopesRestricted reports whether scopes are limited to a fixed set.
func (c *Config) ScopesRestricted() bool {
	return c != nil && len(c.Scopes) > 0
}

// QuestionNames returns the question tokens in prompt order.
func (c *Config) QuestionNames() []string {
	if c == nil {
		return nil
	}
	return slice.Map(c.Questions, func(_ int, q Question) string {
		return q.ToString()
	})
}
