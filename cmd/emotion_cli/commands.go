package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"emotion-canvas/internal/domain"
	"emotion-canvas/internal/service"
)

// newRootCommand arma el arbol de comandos. Todo corre en proceso, sin
// servidor ni base de datos.
func newRootCommand(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "emotion_cli",
		Short:        "Classify text into emotions and generate placeholder artworks",
		SilenceUsage: true,
	}

	root.AddCommand(
		classifyCommand(),
		describeCommand(),
		generateCommand(logger),
		stylesCommand(),
	)
	return root
}

func classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Print the emotion scores for a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			result := service.DefaultEmotionClassifier.Classify(text)
			return writeJSON(cmd.OutOrStdout(), struct {
				domain.ClassificationResult
				MatchedWords []string              `json:"matched_words"`
				Profile      domain.EmotionProfile `json:"profile"`
			}{
				ClassificationResult: result,
				MatchedWords:         service.DefaultEmotionClassifier.MatchedWords(text),
				Profile:              service.EmotionProfileFor(result.PrimaryEmotion),
			})
		},
	}
}

func describeCommand() *cobra.Command {
	var styleID string
	cmd := &cobra.Command{
		Use:   "describe <emotion>",
		Short: "Print a descriptive prompt for an emotion and art style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emotion, style, err := resolveEmotionAndStyle(args[0], styleID)
			if err != nil {
				return err
			}
			prompt := service.NewArtPromptBuilder(nil).DescribeArtwork(emotion, style)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return err
		},
	}
	cmd.Flags().StringVar(&styleID, "style", "", "Art style id (see the styles command)")
	return cmd
}

func generateCommand(logger *zap.Logger) *cobra.Command {
	var (
		styleID string
		seed    int
		delay   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate <emotion>",
		Short: "Generate a placeholder artwork for an emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emotion, style, err := resolveEmotionAndStyle(args[0], styleID)
			if err != nil {
				return err
			}
			var seedPtr *int
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			generator := service.NewArtGenerator(nil, service.WithGenerationDelay(delay))
			logger.Info("generating artwork",
				zap.String("emotion", string(emotion)),
				zap.String("style", style.ID),
				zap.Duration("delay", delay),
			)
			result, err := generator.Generate(ctx, emotion, style, seedPtr)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&styleID, "style", "", "Art style id (see the styles command)")
	cmd.Flags().IntVar(&seed, "seed", 0, "Fixed seed; random when omitted")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Simulated generation delay")
	return cmd
}

func stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available art styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), service.ArtStyles())
		},
	}
}

func resolveEmotionAndStyle(rawEmotion, styleID string) (domain.Emotion, domain.ArtStyle, error) {
	emotion, ok := domain.ParseEmotion(rawEmotion)
	if !ok {
		return "", domain.ArtStyle{}, fmt.Errorf("%w: %q", service.ErrUnknownEmotion, rawEmotion)
	}
	style := service.DefaultArtStyle()
	if strings.TrimSpace(styleID) != "" {
		found, ok := service.FindArtStyle(styleID)
		if !ok {
			return "", domain.ArtStyle{}, fmt.Errorf("%w: %q", service.ErrUnknownStyle, styleID)
		}
		style = found
	}
	return emotion, style, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
