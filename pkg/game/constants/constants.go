package constants

const (
	// BoardWidth is the default number of columns
	BoardWidth int = 8
	// BoardHeight is the default number of rows
	BoardHeight int = 8
	// PendingCount is the number of pieces offered at once
	PendingCount int = 3
	// VariantCount is the number of cosmetic piece variants; tags run 1..VariantCount
	VariantCount int = 6

	// BasePerCell is the score per placed cell
	BasePerCell int = 1
	// BasePerLine is the score per cleared row or column
	BasePerLine int = 8
	// ComboMultiplier scales the line score: base * (1 + combo * ComboMultiplier)
	ComboMultiplier float64 = 0.1
	// ComboDecayThreshold is the number of non-clearing placements that end a combo
	ComboDecayThreshold int = 3
)
