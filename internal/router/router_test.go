package router

import "testing"

func TestKeywordRouter_Classify(t *testing.T) {
	r := New()

	tests := []struct {
		name        string
		message     string
		wantIntent  Intent
		wantKeyword string
	}{
		{"picture of", "Show me a picture of a cat", IntentImageRequest, "picture of"},
		{"draw er", "Draw ER diagram for orders", IntentDiagramRequest, "er diagram"},
		{"general", "What's the capital of France?", IntentGeneralQuery, ""},
		{"show image upper case", "SHOW IMAGE please", IntentImageRequest, "show image"},
		{"display image", "can you display image 3", IntentImageRequest, "display image"},
		{"image of", "I'd like an image of a dog", IntentImageRequest, "image of"},
		{"entity relationship", "entity relationship diagram for a library", IntentDiagramRequest, "entity relationship diagram"},
		{"draw er only", "please draw er for the shop", IntentDiagramRequest, "draw er"},
		{"image wins over diagram", "picture of an ER diagram", IntentImageRequest, "picture of"},
		{"empty", "", IntentGeneralQuery, ""},
		{"near miss", "can you picture a dog", IntentGeneralQuery, ""},
		{"substring inside word", "the answer diagram", IntentDiagramRequest, "er diagram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Classify(tt.message)
			if out.Intent != tt.wantIntent {
				t.Errorf("Classify(%q) intent = %s, want %s", tt.message, out.Intent, tt.wantIntent)
			}
			if out.Keyword != tt.wantKeyword {
				t.Errorf("Classify(%q) keyword = %q, want %q", tt.message, out.Keyword, tt.wantKeyword)
			}
		})
	}
}
