package commit

import (
	"fmt"
	"slices"
	"strings"
)

// Config describes the commit types, scopes, prompts and subject length
// bounds a commit message wizard reads to drive its questions.
//
// List holds the commit types in menu order. An empty Scopes means the
// scope is free text.
type Config struct {
	List             []string            `json:"list" yaml:"list"`
	MaxMessageLength int                 `json:"maxMessageLength" yaml:"maxMessageLength"`
	MinMessageLength int                 `json:"minMessageLength" yaml:"minMessageLength"`
	Questions        []Question          `json:"questions" yaml:"questions"`
	Scopes           []string            `json:"scopes" yaml:"scopes"`
	Types            map[string]TypeInfo `json:"types" yaml:"types"`
}

// TypeInfo is the menu entry of a single commit type.
type TypeInfo struct {
	Description string `json:"description" yaml:"description"`
	Value       string `json:"value" yaml:"value"`
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := &Config{
		List:             slices.Clone(c.List),
		MaxMessageLength: c.MaxMessageLength,
		MinMessageLength: c.MinMessageLength,
		Questions:        slices.Clone(c.Questions),
		Scopes:           slices.Clone(c.Scopes),
	}

	if c.Types != nil {
		out.Types = make(map[string]TypeInfo, len(c.Types))
		for k, v := range c.Types {
			out.Types[k] = v
		}
	}

	return out
}

// Question is a single interactive prompt kind understood by the wizard.
type Question int

const (
	// TypeQuestion asks for the commit type.
	TypeQuestion Question = iota
	// ScopeQuestion asks for the commit scope.
	ScopeQuestion
	// SubjectQuestion asks for the subject line.
	SubjectQuestion
	// BodyQuestion asks for the longer description.
	BodyQuestion
	// BreakingQuestion asks for breaking change details.
	BreakingQuestion
	// IssuesQuestion asks for the issues the commit closes.
	IssuesQuestion
	// LernaQuestion asks for the affected lerna packages.
	LernaQuestion
)

var QuestionIds = map[Question][]string{
	TypeQuestion:     {"type"},
	ScopeQuestion:    {"scope"},
	SubjectQuestion:  {"subject"},
	BodyQuestion:     {"body"},
	BreakingQuestion: {"breaking"},
	IssuesQuestion:   {"issues"},
	LernaQuestion:    {"lerna"},
}

// ParseQuestion parses a string and returns the corresponding Question.
// It returns an error if the string doesn't match any known Question.
func ParseQuestion(s string) (Question, error) {
	for q, ids := range QuestionIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return q, nil
			}
		}
	}
	return Question(-1), fmt.Errorf("unknown question: %s", s)
}

// Known reports whether q is one of the declared questions.
func (q Question) Known() bool {
	_, ok := QuestionIds[q]
	return ok
}

// ToString converts the Question value to a string representation.
func (q Question) ToString() string {
	if val, ok := QuestionIds[q]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownQuestion(%d)", q)
}

func (q Question) String() string {
	return q.ToString()
}

// MarshalText implements encoding.TextMarshaler.
func (q Question) MarshalText() ([]byte, error) {
	if !q.Known() {
		return nil, fmt.Errorf("unknown question: %d", int(q))
	}
	return []byte(q.ToString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Question) UnmarshalText(text []byte) error {
	parsed, err := ParseQuestion(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
