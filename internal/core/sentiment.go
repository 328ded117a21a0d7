package core

// sentimentScores assigns a signed weight to each known emotion label for
// trend averaging. This is configuration data, not stored state.
var sentimentScores = map[string]int{
	"Happy":   2,
	"Excited": 3,
	"Love":    3,
	"Nice":    1,
	"Sad":     -2,
	"Bad":     -1,
	"Angry":   -3,
}

// SentimentScore returns the weight for an emotion label, 0 for unknown labels.
func SentimentScore(emotion string) int {
	return sentimentScores[emotion]
}
