// ABOUTME: Domain model for image/description scoring
// ABOUTME: Numeric grade plus reasoning produced by the multimodal scorer

package domain

// ImageScore is the result of grading a textual description against an
// image. Score is an integer between 0 and 100.
type ImageScore struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}
