package commit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if len(c.List) != 9 {
		t.Errorf("len(List) = %d; want 9", len(c.List))
	}
	if c.MinMessageLength != 3 {
		t.Errorf("MinMessageLength = %d; want 3", c.MinMessageLength)
	}
	if c.MaxMessageLength != 64 {
		t.Errorf("MaxMessageLength = %d; want 64", c.MaxMessageLength)
	}
	if got := c.Types["feat"].Description; got != "A new feature" {
		t.Errorf("Types[feat].Description = %q; want %q", got, "A new feature")
	}
	if len(c.Scopes) != 0 {
		t.Errorf("Scopes = %v; want empty", c.Scopes)
	}

	wantList := []string{"test", "feat", "fix", "chore", "docs", "refactor", "style", "ci", "perf"}
	if diff := cmp.Diff(wantList, c.List); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	wantQuestions := []string{"type", "scope", "subject", "body", "breaking", "issues", "lerna"}
	if diff := cmp.Diff(wantQuestions, c.QuestionNames()); diff != "" {
		t.Errorf("Questions mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v; want nil", err)
	}
}

func TestDefaultConfigListKeysIntoTypes(t *testing.T) {
	c := DefaultConfig()

	seen := make(map[string]bool)
	for _, key := range c.List {
		if seen[key] {
			t.Errorf("duplicate list entry %q", key)
		}
		seen[key] = true

		if _, ok := c.Types[key]; !ok {
			t.Errorf("list entry %q has no type definition", key)
		}
	}

	for key, info := range c.Types {
		if info.Description == "" || info.Value == "" {
			t.Errorf("type %q has empty fields: %+v", key, info)
		}
	}

	if c.MinMessageLength <= 0 || c.MinMessageLength >= c.MaxMessageLength {
		t.Errorf("bad length bounds: min=%d max=%d", c.MinMessageLength, c.MaxMessageLength)
	}
}

func TestDefaultConfigKeepsReleaseHidden(t *testing.T) {
	c := DefaultConfig()

	if _, ok := c.Types["release"]; !ok {
		t.Fatal("release type missing")
	}
	if diff := cmp.Diff([]string{"release"}, c.HiddenTypes()); diff != "" {
		t.Errorf("HiddenTypes mismatch (-want +got):\n%s", diff)
	}
	if len(c.MismatchedValues()) != 0 {
		t.Errorf("MismatchedValues() = %v; want none", c.MismatchedValues())
	}
}

func TestDefaultConfigIdempotent(t *testing.T) {
	first := DefaultConfig()
	second := DefaultConfig()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("DefaultConfig() not stable (-first +second):\n%s", diff)
	}

	first.List[0] = "changed"
	first.Types["feat"] = TypeInfo{Description: "changed", Value: "changed"}
	first.Questions[0] = LernaQuestion

	third := DefaultConfig()
	if diff := cmp.Diff(second, third); diff != "" {
		t.Errorf("mutating a returned config leaked into defaults (-want +got):\n%s", diff)
	}
}
