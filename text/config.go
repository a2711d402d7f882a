package text

// Config holds the tunables of line reconstruction.
type Config struct {
	// SpaceInsertionFactor scales the estimated space width before it
	// is compared against the gap between two fragments. A space is
	// inferred when factor*spaceWidth < gap.
	SpaceInsertionFactor float64

	// BaselineBand is the height of the horizontal band used to decide
	// that two baselines lie on the same visual line. Baseline y
	// coordinates are quantized down to a multiple of this value.
	BaselineBand float64

	// ExpandLigatures folds ligature code points (fi, fl, AE, OE and
	// friends) into their component letters in extracted text.
	ExpandLigatures bool
}

// DefaultConfig returns the configuration with the default space
// threshold and baseline band.
func DefaultConfig() Config {
	return Config{
		SpaceInsertionFactor: 0.90,
		BaselineBand:         5.0,
	}
}
