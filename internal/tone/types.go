package tone

// #region layers

// Tonal layers, numbered 1 (Foundation) through 7 (Vision). Higher layers
// carry more strategic weight and win score ties.
const (
	LayerFoundation  = 1
	LayerOperations  = 2
	LayerCommunity   = 3
	LayerDevelopment = 4
	LayerResearch    = 5
	LayerPhilosophy  = 6
	LayerVision      = 7
)

// layerOrder enumerates layers in descending order. Every per-layer walk in
// this package follows it, so tie-breaks and pattern positions stay stable.
var layerOrder = []int{
	LayerVision, LayerPhilosophy, LayerResearch, LayerDevelopment,
	LayerCommunity, LayerOperations, LayerFoundation,
}

type layerInfo struct {
	name  string
	gloss string
}

var layerTable = map[int]layerInfo{
	LayerVision:      {"Vision", "Ọhụụ"},
	LayerPhilosophy:  {"Philosophy", "Nkà"},
	LayerResearch:    {"Research", "Nyocha"},
	LayerDevelopment: {"Development", "Mmepe"},
	LayerCommunity:   {"Community", "Obodo"},
	LayerOperations:  {"Operations", "Ọrụ"},
	LayerFoundation:  {"Foundation", "Ntọala"},
}

// LayerName returns the English name of a layer ("Vision"), or "Unknown".
func LayerName(layer int) string {
	if info, ok := layerTable[layer]; ok {
		return info.name
	}
	return "Unknown"
}

// LayerGloss returns the Igbo gloss of a layer ("Ọhụụ"), or "".
func LayerGloss(layer int) string {
	if info, ok := layerTable[layer]; ok {
		return info.gloss
	}
	return ""
}

// #endregion layers

// #region glyphs

// Ratio-bucket glyphs (IPA tone letters, high through low).
const (
	GlyphHigh    = "˥"
	GlyphRising  = "˦"
	GlyphMid     = "˧"
	GlyphFalling = "˨"
	GlyphLow     = "˩"
)

// #endregion glyphs

// #region score

// Score is the result of analyzing one piece of content.
type Score struct {
	Dominant int         // dominant layer, 1..7
	Counts   map[int]int // keyword hits per layer
	Pattern  string      // seven glyphs, one per layer in descending order
}

// #endregion score
