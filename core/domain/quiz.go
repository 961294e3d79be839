// ABOUTME: Domain models for quiz generation
// ABOUTME: Defines the quiz structure returned by the language model

package domain

// Question is a single multiple-choice quiz question. Answer is always
// one of Options; the model is constrained to that shape and the
// generator validates it.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// Quiz is a set of questions generated from one article.
type Quiz struct {
	Questions []Question `json:"questions"`
}
