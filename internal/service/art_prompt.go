package service

import (
	"strings"

	"emotion-canvas/internal/domain"
)

// ArtPromptBuilder arma el texto que describe como "se genero" una obra.
type ArtPromptBuilder struct {
	rand RandSource
}

func NewArtPromptBuilder(rnd RandSource) ArtPromptBuilder {
	if rnd == nil {
		rnd = NewRandSource()
	}
	return ArtPromptBuilder{rand: rnd}
}

// DescribeArtwork elige una plantilla al azar para la emocion, agrega el
// modificador del estilo y los tres colores principales de la paleta.
func (b ArtPromptBuilder) DescribeArtwork(emotion domain.Emotion, style domain.ArtStyle) string {
	templates, ok := promptTemplates[emotion]
	if !ok {
		templates = promptTemplates[domain.EmotionNeutral]
	}
	base := templates[b.rand.IntN(len(templates))]

	var sb strings.Builder
	sb.WriteString(base)
	// Estilo desconocido: sin modificador y sin espacio suelto antes de la coma.
	if modifier := styleModifiers[style.ID]; modifier != "" {
		sb.WriteString(" ")
		sb.WriteString(modifier)
	}
	sb.WriteString(", incorporating ")
	sb.WriteString(strings.Join(PrimaryColors(emotion), ", "))
	sb.WriteString(" as primary colors.")
	return sb.String()
}
