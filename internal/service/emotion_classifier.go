package service

import (
	"regexp"
	"strings"

	"emotion-canvas/internal/domain"
)

// neutralBias es el valor inicial de neutral antes de contar palabras.
const neutralBias = 0.1

var wordPattern = regexp.MustCompile(`\w+`)

// EmotionClassifier asigna una emocion a un texto libre contando palabras de
// un diccionario afectivo fijo. Es una funcion pura: no guarda estado.
type EmotionClassifier struct {
	dictionary map[string]domain.Emotion
}

// DefaultEmotionClassifier usa el diccionario completo.
var DefaultEmotionClassifier = NewEmotionClassifier()

func NewEmotionClassifier() EmotionClassifier {
	return EmotionClassifier{dictionary: emotionDictionary}
}

// Classify es total sobre cualquier string, incluido el vacio.
func (c EmotionClassifier) Classify(text string) domain.ClassificationResult {
	raw := make(map[domain.Emotion]float64, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		raw[e] = 0
	}
	raw[domain.EmotionNeutral] = neutralBias

	matched := 0
	for _, token := range Tokenize(text) {
		if emotion, ok := c.dictionary[token]; ok {
			raw[emotion]++
			matched++
		}
	}

	// Sin coincidencias neutral vale exactamente 1; el sesgo se descarta.
	if matched == 0 {
		raw[domain.EmotionNeutral] = 1
	}

	primary := domain.EmotionNeutral
	maxScore := 0.0
	total := 0.0
	for _, e := range domain.AllEmotions {
		if raw[e] > maxScore {
			maxScore = raw[e]
			primary = e
		}
		total += raw[e]
	}

	confidence := 0.0
	if total > 0 && matched > 0 {
		confidence = maxScore / total
	}

	scores := make(domain.ScoreDistribution, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		switch {
		case total > 0:
			scores[e] = raw[e] / total
		case e == domain.EmotionNeutral:
			scores[e] = 1
		default:
			scores[e] = 0
		}
	}

	return domain.ClassificationResult{
		PrimaryEmotion: primary,
		EmotionScores:  scores,
		Confidence:     confidence,
	}
}

// Tokenize expone la tokenizacion usada por Classify (minusculas + \w+).
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// MatchedWords devuelve las palabras del texto que estan en el diccionario, en orden.
func (c EmotionClassifier) MatchedWords(text string) []string {
	var out []string
	for _, token := range Tokenize(text) {
		if _, ok := c.dictionary[token]; ok {
			out = append(out, token)
		}
	}
	return out
}
