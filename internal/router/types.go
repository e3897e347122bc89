package router

// Intent represents how a prompt is handled
type Intent string

const (
	IntentImageRequest   Intent = "IMAGE_REQUEST"
	IntentDiagramRequest Intent = "DIAGRAM_REQUEST"
	IntentGeneralQuery   Intent = "GENERAL_QUERY"
)

// RouterOutput is the routing decision for one prompt
type RouterOutput struct {
	Intent  Intent `json:"intent"`
	Keyword string `json:"keyword,omitempty"` // trigger phrase that matched, empty for GENERAL_QUERY
}
