package commit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChoices(t *testing.T) {
	c := &Config{
		List: []string{"feat", "missing", "fix"},
		Types: map[string]TypeInfo{
			"fix":     {Description: "A bug fix", Value: "fix"},
			"feat":    {Description: "A new feature", Value: "feature"},
			"release": {Description: "Create a release commit", Value: "release"},
			"build":   {Description: "Build changes", Value: "build"},
		},
	}

	want := []Choice{
		{Key: "feat", Value: "feature", Description: "A new feature"},
		{Key: "fix", Value: "fix", Description: "A bug fix"},
	}
	if diff := cmp.Diff(want, c.Choices()); diff != "" {
		t.Errorf("Choices() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"build", "release"}, c.HiddenTypes()); diff != "" {
		t.Errorf("HiddenTypes() mismatch (-want +got):\n%s", diff)
	}

	wantAll := append(want,
		Choice{Key: "build", Value: "build", Description: "Build changes", Hidden: true},
		Choice{Key: "release", Value: "release", Description: "Create a release commit", Hidden: true},
	)
	if diff := cmp.Diff(wantAll, c.AllChoices()); diff != "" {
		t.Errorf("AllChoices() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultChoicesFollowListOrder(t *testing.T) {
	c := DefaultConfig()

	choices := c.Choices()
	if len(choices) != len(c.List) {
		t.Fatalf("len(Choices()) = %d; want %d", len(choices), len(c.List))
	}
	for i, choice := range choices {
		if choice.Key != c.List[i] {
			t.Errorf("Choices()[%d].Key = %q; want %q", i, choice.Key, c.List[i])
		}
		if choice.Hidden {
			t.Errorf("Choices()[%d] is hidden", i)
		}
	}

	all := c.AllChoices()
	if last := all[len(all)-1]; last.Key != "release" || !last.Hidden {
		t.Errorf("last of AllChoices() = %+v; want hidden release", last)
	}
}

func TestQuestionsAndScopes(t *testing.T) {
	c := DefaultConfig()

	for q := range QuestionIds {
		if !c.HasQuestion(q) {
			t.Errorf("HasQuestion(%s) = false; want true", q)
		}
	}
	if c.ScopesRestricted() {
		t.Error("ScopesRestricted() = true for empty scopes")
	}

	c.Questions = []Question{TypeQuestion, SubjectQuestion}
	c.Scopes = []string{"api"}

	if c.HasQuestion(LernaQuestion) {
		t.Error("HasQuestion(lerna) = true; want false")
	}
	if !c.ScopesRestricted() {
		t.Error("ScopesRestricted() = false; want true")
	}
}

func TestNilConfigViews(t *testing.T) {
	var c *Config

	if c.Choices() != nil || c.HiddenTypes() != nil || c.AllChoices() != nil {
		t.Error("expected nil views for nil config")
	}
	if c.HasQuestion(TypeQuestion) || c.ScopesRestricted() {
		t.Error("expected false for nil config")
	}
	if c.Clone() != nil {
		t.Error("Clone() of nil config should be nil")
	}
}

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		input   string
		want    Question
		wantErr bool
	}{
		{input: "type", want: TypeQuestion},
		{input: "Breaking", want: BreakingQuestion},
		{input: "LERNA", want: LernaQuestion},
		{input: "footer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseQuestion(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseQuestion(%q) error = nil; want error", test.input)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("ParseQuestion(%q) = %v, %v; want %v", test.input, got, err, test.want)
		}
	}

	if got := Question(99).ToString(); got != "UnknownQuestion(99)" {
		t.Errorf("ToString() = %q", got)
	}
}
