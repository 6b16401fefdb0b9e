package service

import (
	"math"
	"strings"
	"testing"

	"emotion-canvas/internal/domain"
)

const scoreTolerance = 1e-9

func assertScoresSumToOne(t *testing.T, scores domain.ScoreDistribution) {
	t.Helper()
	if len(scores) != len(domain.AllEmotions) {
		t.Fatalf("expected %d score keys, got %d", len(domain.AllEmotions), len(scores))
	}
	if sum := scores.Sum(); math.Abs(sum-1) > scoreTolerance {
		t.Fatalf("expected scores to sum to 1, got %v", sum)
	}
}

func assertNeutralFallback(t *testing.T, res domain.ClassificationResult) {
	t.Helper()
	if res.PrimaryEmotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral, got %s", res.PrimaryEmotion)
	}
	if res.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %v", res.Confidence)
	}
	for _, e := range domain.AllEmotions {
		want := 0.0
		if e == domain.EmotionNeutral {
			want = 1
		}
		if res.EmotionScores[e] != want {
			t.Fatalf("expected %s=%v, got %v", e, want, res.EmotionScores[e])
		}
	}
}

func TestClassify_NoMatchesFallsBackToNeutral(t *testing.T) {
	c := NewEmotionClassifier()
	for _, text := range []string{
		"The weather report mentions rain on Tuesday.",
		"12345 !!! ???",
		"Très fatigué, journée normale",
	} {
		res := c.Classify(text)
		assertNeutralFallback(t, res)
		assertScoresSumToOne(t, res.EmotionScores)
	}
}

func TestClassify_EmptyStringMatchesZeroMatchCase(t *testing.T) {
	c := NewEmotionClassifier()
	empty := c.Classify("")
	assertNeutralFallback(t, empty)

	noMatch := c.Classify("nothing relevant here")
	if empty.PrimaryEmotion != noMatch.PrimaryEmotion || empty.Confidence != noMatch.Confidence {
		t.Fatalf("expected empty and no-match to agree: %+v vs %+v", empty, noMatch)
	}
}

func TestClassify_JoyExample(t *testing.T) {
	res := DefaultEmotionClassifier.Classify("I am happy and excited today")
	if res.PrimaryEmotion != domain.EmotionJoy {
		t.Fatalf("expected joy, got %s", res.PrimaryEmotion)
	}
	// joy=2, neutral=0.1 -> 2/2.1
	if math.Abs(res.Confidence-2/2.1) > scoreTolerance {
		t.Fatalf("unexpected confidence %v", res.Confidence)
	}
	if math.Abs(res.EmotionScores[domain.EmotionNeutral]-0.1/2.1) > scoreTolerance {
		t.Fatalf("expected neutral bias to survive normalization, got %v", res.EmotionScores[domain.EmotionNeutral])
	}
	assertScoresSumToOne(t, res.EmotionScores)
}

func TestClassify_TieBreakFollowsEnumerationOrder(t *testing.T) {
	c := NewEmotionClassifier()
	cases := []struct {
		text string
		want domain.Emotion
	}{
		{"happy sad", domain.EmotionJoy},
		{"sad happy", domain.EmotionJoy},
		{"calm afraid", domain.EmotionFear},
		{"furious heartbroken", domain.EmotionSadness},
		{"okay serene", domain.EmotionNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			res := c.Classify(tc.text)
			if res.PrimaryEmotion != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.PrimaryEmotion)
			}
			assertScoresSumToOne(t, res.EmotionScores)
		})
	}
}

func TestClassify_NormalizesCaseAndPunctuation(t *testing.T) {
	res := DefaultEmotionClassifier.Classify("FURIOUS!!! so... Angry, and (mad)")
	if res.PrimaryEmotion != domain.EmotionAnger {
		t.Fatalf("expected anger, got %s", res.PrimaryEmotion)
	}
	if math.Abs(res.Confidence-3/3.1) > scoreTolerance {
		t.Fatalf("unexpected confidence %v", res.Confidence)
	}
}

func TestClassify_NoStemming(t *testing.T) {
	res := DefaultEmotionClassifier.Classify("happiness and sadly")
	assertNeutralFallback(t, res)
}

func TestClassify_ExtendedDictionaryOverridesBase(t *testing.T) {
	res := DefaultEmotionClassifier.Classify("content")
	if res.PrimaryEmotion != domain.EmotionJoy {
		t.Fatalf("expected content to map to joy, got %s", res.PrimaryEmotion)
	}
}

func TestClassify_NeutralWordsBeatBias(t *testing.T) {
	res := DefaultEmotionClassifier.Classify("I feel okay, just fine")
	if res.PrimaryEmotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral, got %s", res.PrimaryEmotion)
	}
	// neutral = 0.1 + 2 y es el total completo.
	if res.Confidence != 1 {
		t.Fatalf("expected confidence 1, got %v", res.Confidence)
	}
}

func TestClassify_ScoresAlwaysSumToOne(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"happy happy sad angry scared calm okay",
		"blue mood but mellow and mindful, slightly uneasy",
		strings.Repeat("terrified ", 50) + strings.Repeat("jubilant ", 49),
	}
	for _, in := range inputs {
		assertScoresSumToOne(t, DefaultEmotionClassifier.Classify(in).EmotionScores)
	}
}

func TestMatchedWords(t *testing.T) {
	got := DefaultEmotionClassifier.MatchedWords("Happy, tired and WORRIED")
	if len(got) != 2 || got[0] != "happy" || got[1] != "worried" {
		t.Fatalf("unexpected matched words %v", got)
	}
}
