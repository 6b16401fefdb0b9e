package service

import (
	"strings"

	"emotion-canvas/internal/domain"
)

// artStyles es el catalogo fijo de estilos, en orden de presentacion.
var artStyles = []domain.ArtStyle{
	{
		ID:          "abstract",
		Name:        "Abstract",
		Description: "Non-representational forms, shapes, and colors that express emotions directly",
	},
	{
		ID:          "impressionist",
		Name:        "Impressionist",
		Description: "Soft brushstrokes and emphasis on light, capturing the feeling of a moment",
	},
	{
		ID:          "expressionist",
		Name:        "Expressionist",
		Description: "Bold, intense colors and distorted forms to evoke emotional states",
	},
	{
		ID:          "minimalist",
		Name:        "Minimalist",
		Description: "Simple, clean designs with minimal elements for clarity and focus",
	},
	{
		ID:          "surrealist",
		Name:        "Surrealist",
		Description: "Dreamlike, unexpected juxtapositions that explore the subconscious",
	},
}

// ArtStyles devuelve una copia del catalogo.
func ArtStyles() []domain.ArtStyle {
	out := make([]domain.ArtStyle, len(artStyles))
	copy(out, artStyles)
	return out
}

// DefaultArtStyle es el estilo preseleccionado (abstract).
func DefaultArtStyle() domain.ArtStyle {
	return artStyles[0]
}

// FindArtStyle busca un estilo por id.
func FindArtStyle(id string) (domain.ArtStyle, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range artStyles {
		if s.ID == id {
			return s, true
		}
	}
	return domain.ArtStyle{}, false
}

// emotionPalettes tiene seis colores por emocion; el prompt usa los tres primeros.
var emotionPalettes = map[domain.Emotion][]string{
	domain.EmotionJoy:     {"#FFD700", "#FFA500", "#FF4500", "#FF6347", "#FFFF00", "#FFF8E1"},
	domain.EmotionSadness: {"#4682B4", "#6495ED", "#B0C4DE", "#ADD8E6", "#E1F5FE", "#87CEFA"},
	domain.EmotionAnger:   {"#FF0000", "#8B0000", "#FF4500", "#FF6347", "#FFEBEE", "#FF7043"},
	domain.EmotionFear:    {"#4B0082", "#800080", "#9370DB", "#BA55D3", "#F3E5F5", "#E6E6FA"},
	domain.EmotionNeutral: {"#808080", "#A9A9A9", "#D3D3D3", "#F5F5F5", "#DCDCDC", "#E0E0E0"},
	domain.EmotionCalm:    {"#66CDAA", "#48D1CC", "#AFEEEE", "#E0FFFF", "#E0F2F1", "#B2DFDB"},
}

// PrimaryColors devuelve los tres primeros colores de la paleta de la emocion.
func PrimaryColors(emotion domain.Emotion) []string {
	palette, ok := emotionPalettes[emotion]
	if !ok {
		palette = emotionPalettes[domain.EmotionNeutral]
	}
	out := make([]string, 3)
	copy(out, palette[:3])
	return out
}

var promptTemplates = map[domain.Emotion][]string{
	domain.EmotionJoy: {
		"Create a vibrant, uplifting artwork with dynamic movement",
		"Generate an artwork with warm, bright colors that evoke happiness",
		"Design a composition with playful, energetic elements and flowing forms",
	},
	domain.EmotionSadness: {
		"Create a reflective, melancholic artwork with subtle blue tones",
		"Design a composition with gentle downward movement and soft edges",
		"Generate an artwork that conveys thoughtful introspection and quiet beauty",
	},
	domain.EmotionAnger: {
		"Create a bold, intense artwork with sharp contrasts and dynamic elements",
		"Design a composition with strong, jagged lines and forceful energy",
		"Generate an artwork that channels intensity through powerful visual elements",
	},
	domain.EmotionFear: {
		"Create an artwork with mysterious, uncertain spaces and shadowy elements",
		"Design a composition with fractured patterns and unsettling transitions",
		"Generate an artwork that explores the boundary between known and unknown",
	},
	domain.EmotionNeutral: {
		"Create a balanced, harmonious artwork with equal visual weight",
		"Design a composition with clean lines and ordered structure",
		"Generate an artwork with a sense of calm clarity and balanced elements",
	},
	domain.EmotionCalm: {
		"Create a serene, peaceful artwork with gentle flowing elements",
		"Design a composition with soft gradients and harmonious transitions",
		"Generate an artwork that evokes tranquility through balanced, organic forms",
	},
}

var styleModifiers = map[string]string{
	"abstract":      "using non-representational forms and shapes",
	"impressionist": "with soft brushstrokes and emphasis on light and atmosphere",
	"expressionist": "with bold, intense colors and distorted forms",
	"minimalist":    "using simple, essential elements with clean composition",
	"surrealist":    "featuring unexpected juxtapositions and dreamlike qualities",
}

const unsplashBase = "https://images.unsplash.com/"

// placeholderAssets son las imagenes que se muestran como "arte generado".
var placeholderAssets = map[domain.Emotion][]string{
	domain.EmotionJoy: {
		unsplashBase + "photo-1470813740244-df37b8c1edcb",
		unsplashBase + "photo-1506744038136-46273834b3fb",
		unsplashBase + "photo-1552083375-1447ce886485",
	},
	domain.EmotionSadness: {
		unsplashBase + "photo-1501854140801-50d01698950b",
		unsplashBase + "photo-1468276311594-df7cb65d8df6",
		unsplashBase + "photo-1432405972618-c60b0225b8f9",
	},
	domain.EmotionAnger: {
		unsplashBase + "photo-1516410529446-2c777cb7366d",
		unsplashBase + "photo-1584226761916-3fd67ab5ac3a",
		unsplashBase + "photo-1531386450864-1607c9f7c9c4",
	},
	domain.EmotionFear: {
		unsplashBase + "photo-1476370648495-3533f64427a2",
		unsplashBase + "photo-1529777117140-33283c2ce9a7",
		unsplashBase + "photo-1518281439008-56f5cf00e7e0",
	},
	domain.EmotionNeutral: {
		unsplashBase + "photo-1577017040065-650ee4d43339",
		unsplashBase + "photo-1509909756405-be0199881695",
		unsplashBase + "photo-1579187160088-d8ce53fba6c7",
	},
	domain.EmotionCalm: {
		unsplashBase + "photo-1439405326854-014607f694d7",
		unsplashBase + "photo-1465146344425-f00d5f5c8f07",
		unsplashBase + "photo-1473773508845-188df298d2d1",
	},
}

// PlaceholderAssets devuelve los candidatos de la emocion (neutral si no existe).
func PlaceholderAssets(emotion domain.Emotion) []string {
	assets, ok := placeholderAssets[emotion]
	if !ok {
		assets = placeholderAssets[domain.EmotionNeutral]
	}
	out := make([]string, len(assets))
	copy(out, assets)
	return out
}

// FeaturedArtworks es la galeria de ejemplo que se muestra antes de que el
// visitante genere algo propio.
func FeaturedArtworks() []domain.ArtworkResult {
	return []domain.ArtworkResult{
		{AssetURL: unsplashBase + "photo-1470813740244-df37b8c1edcb", Emotion: domain.EmotionJoy, Style: artStyles[0], Seed: 123456},
		{AssetURL: unsplashBase + "photo-1501854140801-50d01698950b", Emotion: domain.EmotionSadness, Style: artStyles[1], Seed: 789012},
		{AssetURL: unsplashBase + "photo-1465146344425-f00d5f5c8f07", Emotion: domain.EmotionCalm, Style: artStyles[3], Seed: 345678},
		{AssetURL: unsplashBase + "photo-1529777117140-33283c2ce9a7", Emotion: domain.EmotionFear, Style: artStyles[4], Seed: 901234},
	}
}
