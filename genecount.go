package heredity

// GeneCount is the number of copies of the gene a person is hypothesized
// to carry. Using a single tagged value per person (rather than two
// overlapping "one copy" / "two copies" sets) makes contradictory
// hypotheses unrepresentable.
type GeneCount uint8

const (
	ZeroCopies GeneCount = iota
	OneCopy
	TwoCopies
)

func (g GeneCount) String() string {
	switch g {
	case ZeroCopies:
		return "ZeroCopies"
	case OneCopy:
		return "OneCopy"
	case TwoCopies:
		return "TwoCopies"

	default:
		return "Illegal selection"
	}
}
