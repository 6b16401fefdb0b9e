package domain

// ArtStyle es una entrada fija del catalogo de estilos.
type ArtStyle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ArtworkResult es el resultado de una "generacion". No se reutiliza entre pedidos.
type ArtworkResult struct {
	AssetURL string   `json:"image_url"`
	Emotion  Emotion  `json:"emotion"`
	Style    ArtStyle `json:"style"`
	Seed     int      `json:"seed"`
}
