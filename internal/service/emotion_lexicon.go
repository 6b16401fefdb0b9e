package service

import "emotion-canvas/internal/domain"

// baseEmotionDictionary es el diccionario afectivo original.
var baseEmotionDictionary = map[string]domain.Emotion{
	// Alegria
	"happy":     domain.EmotionJoy,
	"excited":   domain.EmotionJoy,
	"joyful":    domain.EmotionJoy,
	"elated":    domain.EmotionJoy,
	"delighted": domain.EmotionJoy,
	"glad":      domain.EmotionJoy,
	"cheerful":  domain.EmotionJoy,

	// Tristeza
	"sad":         domain.EmotionSadness,
	"unhappy":     domain.EmotionSadness,
	"depressed":   domain.EmotionSadness,
	"gloomy":      domain.EmotionSadness,
	"miserable":   domain.EmotionSadness,
	"heartbroken": domain.EmotionSadness,

	// Ira
	"angry":      domain.EmotionAnger,
	"furious":    domain.EmotionAnger,
	"irritated":  domain.EmotionAnger,
	"annoyed":    domain.EmotionAnger,
	"frustrated": domain.EmotionAnger,

	// Miedo
	"afraid":    domain.EmotionFear,
	"scared":    domain.EmotionFear,
	"anxious":   domain.EmotionFear,
	"worried":   domain.EmotionFear,
	"nervous":   domain.EmotionFear,
	"terrified": domain.EmotionFear,

	// Calma
	"calm":     domain.EmotionCalm,
	"peaceful": domain.EmotionCalm,
	"relaxed":  domain.EmotionCalm,
	"tranquil": domain.EmotionCalm,
	"serene":   domain.EmotionCalm,
	"content":  domain.EmotionCalm,
}

// extendedEmotionDictionary amplia el diccionario base. Sus entradas pisan a
// las del base ("content" termina en joy).
var extendedEmotionDictionary = map[string]domain.Emotion{
	"thrilled":  domain.EmotionJoy,
	"ecstatic":  domain.EmotionJoy,
	"pleased":   domain.EmotionJoy,
	"content":   domain.EmotionJoy,
	"satisfied": domain.EmotionJoy,
	"blissful":  domain.EmotionJoy,
	"jubilant":  domain.EmotionJoy,

	"sorrowful":   domain.EmotionSadness,
	"downcast":    domain.EmotionSadness,
	"blue":        domain.EmotionSadness,
	"downhearted": domain.EmotionSadness,
	"melancholy":  domain.EmotionSadness,
	"grieving":    domain.EmotionSadness,

	"enraged":  domain.EmotionAnger,
	"mad":      domain.EmotionAnger,
	"irate":    domain.EmotionAnger,
	"outraged": domain.EmotionAnger,
	"hostile":  domain.EmotionAnger,

	"frightened":   domain.EmotionFear,
	"alarmed":      domain.EmotionFear,
	"apprehensive": domain.EmotionFear,
	"panicked":     domain.EmotionFear,
	"uneasy":       domain.EmotionFear,

	"composed":  domain.EmotionCalm,
	"collected": domain.EmotionCalm,
	"easygoing": domain.EmotionCalm,
	"mellow":    domain.EmotionCalm,
	"mindful":   domain.EmotionCalm,

	"okay":        domain.EmotionNeutral,
	"fine":        domain.EmotionNeutral,
	"neutral":     domain.EmotionNeutral,
	"indifferent": domain.EmotionNeutral,
	"average":     domain.EmotionNeutral,
}

// emotionDictionary es la union de ambos diccionarios; se arma una sola vez.
var emotionDictionary = mergeDictionaries(baseEmotionDictionary, extendedEmotionDictionary)

func mergeDictionaries(dicts ...map[string]domain.Emotion) map[string]domain.Emotion {
	merged := make(map[string]domain.Emotion)
	for _, d := range dicts {
		for word, emotion := range d {
			merged[word] = emotion
		}
	}
	return merged
}

var emotionDescriptions = map[domain.Emotion]string{
	domain.EmotionJoy:     "Your expression reflects happiness and contentment. Art created from joy often features warm colors and flowing patterns.",
	domain.EmotionSadness: "Your words convey a sense of sadness. Art from this emotion often features blue tones and can be reflective and meaningful.",
	domain.EmotionAnger:   "There's a sense of frustration in your expression. Art created from anger can be bold and dynamic with strong lines.",
	domain.EmotionFear:    "Your words suggest anxiety or concern. Art created from fear often has contrast and can help process complex feelings.",
	domain.EmotionNeutral: "Your expression seems balanced and neutral. This creates art that is harmonious and centered.",
	domain.EmotionCalm:    "There's a peaceful quality to your expression. Calm emotional states create art with soothing patterns and gentle transitions.",
}

// emotionDisplayColors son los fondos suaves usados por los clientes.
var emotionDisplayColors = map[domain.Emotion]string{
	domain.EmotionJoy:     "#FFF8E1",
	domain.EmotionSadness: "#E1F5FE",
	domain.EmotionAnger:   "#FFEBEE",
	domain.EmotionFear:    "#F3E5F5",
	domain.EmotionNeutral: "#F5F5F5",
	domain.EmotionCalm:    "#E0F2F1",
}

var wellnessRecommendations = map[domain.Emotion][]string{
	domain.EmotionJoy: {
		"Capture this positive energy through expressive art",
		"Share your creative expressions with others",
		"Journal about what brings you joy to revisit later",
	},
	domain.EmotionSadness: {
		"Express emotions through blue and purple color palettes",
		"Create art in a comforting environment",
		"Consider soft, flowing brushstrokes to process feelings",
	},
	domain.EmotionAnger: {
		"Use bold, expressive strokes to release tension",
		"Try physical activities before or after creating art",
		"Explore contrasting colors to represent complex emotions",
	},
	domain.EmotionFear: {
		"Start with small, controlled artistic expressions",
		"Create in a safe, comfortable environment",
		"Use art to visualize moving through the fear",
	},
	domain.EmotionNeutral: {
		"Experiment with new artistic techniques",
		"Use art to explore what might bring more emotional depth",
		"Create mindfully, focusing on the process rather than outcome",
	},
	domain.EmotionCalm: {
		"Practice mindful art creation to maintain this state",
		"Use flowing, natural patterns and shapes",
		"Consider art journaling to document this balanced state",
	},
}

// EmotionProfileFor devuelve descripcion, color y recomendaciones. Etiquetas
// desconocidas caen en neutral.
func EmotionProfileFor(emotion domain.Emotion) domain.EmotionProfile {
	if _, ok := emotionDescriptions[emotion]; !ok {
		emotion = domain.EmotionNeutral
	}
	recs := make([]string, len(wellnessRecommendations[emotion]))
	copy(recs, wellnessRecommendations[emotion])
	return domain.EmotionProfile{
		Emotion:         emotion,
		Description:     emotionDescriptions[emotion],
		Color:           emotionDisplayColors[emotion],
		Recommendations: recs,
	}
}

// EmotionProfiles lista los perfiles en el orden de enumeracion.
func EmotionProfiles() []domain.EmotionProfile {
	out := make([]domain.EmotionProfile, 0, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		out = append(out, EmotionProfileFor(e))
	}
	return out
}
