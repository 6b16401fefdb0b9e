package domain

import "strings"

// Emotion es una de las seis categorias afectivas del clasificador.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
	EmotionAnger   Emotion = "anger"
	EmotionFear    Emotion = "fear"
	EmotionNeutral Emotion = "neutral"
	EmotionCalm    Emotion = "calm"
)

// AllEmotions fija el orden de enumeracion. Los empates se resuelven a favor
// de la primera emocion de esta lista.
var AllEmotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionNeutral,
	EmotionCalm,
}

// ParseEmotion normaliza y valida una etiqueta recibida desde afuera.
func ParseEmotion(s string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllEmotions {
		if e == known {
			return e, true
		}
	}
	return "", false
}

// ScoreDistribution asigna a cada emocion su peso normalizado.
type ScoreDistribution map[Emotion]float64

// Sum devuelve la suma de todos los pesos.
func (d ScoreDistribution) Sum() float64 {
	total := 0.0
	for _, v := range d {
		total += v
	}
	return total
}

// ClassificationResult es la salida inmutable del clasificador.
type ClassificationResult struct {
	PrimaryEmotion Emotion           `json:"primary_emotion"`
	EmotionScores  ScoreDistribution `json:"emotion_scores"`
	Confidence     float64           `json:"confidence"`
}

// EmotionProfile agrupa el texto de presentacion asociado a una emocion.
type EmotionProfile struct {
	Emotion         Emotion  `json:"emotion"`
	Description     string   `json:"description"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations"`
}
