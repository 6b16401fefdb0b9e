package domain

// EmotionFrequency es una fila de la tabla de distribucion de emociones.
type EmotionFrequency struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// WeeklyEmotion reparte las emociones de un dia de la semana (porcentajes).
type WeeklyEmotion struct {
	Day     string `json:"day"`
	Joy     int    `json:"joy"`
	Sadness int    `json:"sadness"`
	Anger   int    `json:"anger"`
	Fear    int    `json:"fear"`
	Calm    int    `json:"calm"`
	Neutral int    `json:"neutral"`
}

type WellbeingCorrelation struct {
	Name        string  `json:"name"`
	Correlation float64 `json:"correlation_with_wellbeing"`
}

// Insights es la respuesta completa de la vista de datos.
type Insights struct {
	EmotionalTrends []EmotionFrequency     `json:"emotional_trends"`
	Weekly          []WeeklyEmotion        `json:"weekly"`
	Correlations    []WellbeingCorrelation `json:"correlations"`
	Live            map[Emotion]int        `json:"live,omitempty"`
}
