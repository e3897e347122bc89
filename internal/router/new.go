package router

// Router is the interface for prompt routing
type Router interface {
	Classify(message string) RouterOutput
}

// KeywordRouter classifies prompts by case-insensitive substring matching
type KeywordRouter struct {
	rules []rule
}

type rule struct {
	intent   Intent
	keywords []string
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the fixed image and diagram trigger phrases.
// Image rules are evaluated before diagram rules.
func New() *KeywordRouter {
	return &KeywordRouter{
		rules: []rule{
			{intent: IntentImageRequest, keywords: ImageKeywords},
			{intent: IntentDiagramRequest, keywords: DiagramKeywords},
		},
	}
}
