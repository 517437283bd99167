package commit

const (
	DefaultMaxMessageLength = 64
	DefaultMinMessageLength = 3
)

// defaultList is the type menu order.
var defaultList = []string{
	"test",
	"feat",
	"fix",
	"chore",
	"docs",
	"refactor",
	"style",
	"ci",
	"perf",
}

var defaultQuestions = []Question{
	TypeQuestion,
	ScopeQuestion,
	SubjectQuestion,
	BodyQuestion,
	BreakingQuestion,
	IssuesQuestion,
	LernaQuestion,
}

// "release" is deliberately absent from defaultList.
var defaultTypes = map[string]TypeInfo{
	"chore":    {Description: "Build process or auxiliary tool changes", Value: "chore"},
	"ci":       {Description: "CI related changes", Value: "ci"},
	"docs":     {Description: "Documentation only changes", Value: "docs"},
	"feat":     {Description: "A new feature", Value: "feat"},
	"fix":      {Description: "A bug fix", Value: "fix"},
	"perf":     {Description: "A code change that improves performance", Value: "perf"},
	"refactor": {Description: "A code change that neither fixes a bug or adds a feature", Value: "refactor"},
	"release":  {Description: "Create a release commit", Value: "release"},
	"style":    {Description: "Markup, white-space, formatting, missing semi-colons...", Value: "style"},
	"test":     {Description: "Adding missing tests", Value: "test"},
}

// DefaultConfig returns a fresh copy of the built-in configuration.
func DefaultConfig() *Config {
	c := &Config{
		List:             defaultList,
		MaxMessageLength: DefaultMaxMessageLength,
		MinMessageLength: DefaultMinMessageLength,
		Questions:        defaultQuestions,
		Scopes:           []string{},
		Types:            defaultTypes,
	}
	return c.Clone()
}
