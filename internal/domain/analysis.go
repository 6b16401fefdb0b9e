package domain

import "time"

// Analysis registra una clasificacion hecha para un visitante.
type Analysis struct {
	ID        string               `json:"id"`
	VisitorID string               `json:"visitor_id,omitempty"`
	Text      string               `json:"text"`
	Result    ClassificationResult `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
}

// Artwork registra una obra generada junto con el prompt mostrado.
type Artwork struct {
	ID         string        `json:"id"`
	VisitorID  string        `json:"visitor_id,omitempty"`
	AnalysisID string        `json:"analysis_id,omitempty"`
	Result     ArtworkResult `json:"result"`
	Prompt     string        `json:"prompt"`
	CreatedAt  time.Time     `json:"created_at"`
}
