package tone

// #region imports
import (
	"strings"
)

// #endregion

// #region keywords

// Keyword sets per layer. A token scores a layer when it contains any of the
// layer's keywords as a substring, so "visionary" still counts toward 7.
// A token may score several layers at once.
var layerKeywords = map[int][]string{
	LayerVision:      {"vision", "future", "strategy", "philosophy", "consciousness"},
	LayerPhilosophy:  {"concept", "framework", "theory", "principle", "meaning"},
	LayerResearch:    {"research", "study", "analysis", "experiment", "data"},
	LayerDevelopment: {"build", "code", "implement", "deploy", "technical"},
	LayerCommunity:   {"community", "together", "share", "connect", "social"},
	LayerOperations:  {"daily", "task", "operation", "process", "routine"},
	LayerFoundation:  {"ground", "basic", "foundation", "root", "truth"},
}

// #endregion

// #region analyze

// Analyze scores text against the seven-layer taxonomy via keyword
// heuristics. No external call.
func Analyze(text string) Score {
	lower := strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(lower)

	counts := make(map[int]int, len(layerOrder))
	for _, layer := range layerOrder {
		counts[layer] = countHits(words, layerKeywords[layer])
	}

	return Score{
		Dominant: dominantLayer(counts),
		Counts:   counts,
		Pattern:  buildPattern(counts),
	}
}

func countHits(words []string, keywords []string) int {
	n := 0
	for _, w := range words {
		for _, kw := range keywords {
			if strings.Contains(w, kw) {
				n++
				break
			}
		}
	}
	return n
}

// dominantLayer picks the layer with the strictly highest count. Ties go to
// the higher-numbered layer: descending enumeration means the first maximum
// wins, so keyword-free text resolves to layer 7.
func dominantLayer(counts map[int]int) int {
	dominant := LayerVision
	best := -1
	for _, layer := range layerOrder {
		if counts[layer] > best {
			best = counts[layer]
			dominant = layer
		}
	}
	return dominant
}

// #endregion

// #region pattern

// buildPattern maps each layer's score ratio onto one glyph, walking layers
// in descending order. maxScore 0 yields seven low glyphs.
func buildPattern(counts map[int]int) string {
	maxScore := 0
	for _, layer := range layerOrder {
		if counts[layer] > maxScore {
			maxScore = counts[layer]
		}
	}

	var b strings.Builder
	for _, layer := range layerOrder {
		ratio := 0.0
		if maxScore > 0 {
			ratio = float64(counts[layer]) / float64(maxScore)
		}
		b.WriteString(ratioGlyph(ratio))
	}
	return b.String()
}

func ratioGlyph(ratio float64) string {
	switch {
	case ratio > 0.8:
		return GlyphHigh
	case ratio > 0.6:
		return GlyphRising
	case ratio > 0.4:
		return GlyphMid
	case ratio > 0.2:
		return GlyphFalling
	default:
		return GlyphLow
	}
}

// #endregion

// #region summary

// Summary derives the short glyph sequence embedded in a manifest from the
// dominant layer: high resonance for 6..7, harmonic rising for 4..5, mid low
// for the rest.
func Summary(dominant int) string {
	switch {
	case dominant >= LayerPhilosophy:
		return GlyphHigh + GlyphRising + GlyphHigh
	case dominant >= LayerDevelopment:
		return GlyphMid + GlyphRising
	default:
		return GlyphMid + GlyphLow
	}
}

// #endregion
