package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Trigger phrases, matched against the lower-cased prompt.
var (
	ImageKeywords = []string{
		"show image",
		"display image",
		"image of",
		"picture of",
	}

	DiagramKeywords = []string{
		"er diagram",
		"entity relationship diagram",
		"draw er",
	}
)
