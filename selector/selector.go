package selector

// Selector is either a simple selector (type Simple) or a combination of two selectors
// (type Combined). No other implementations exist.
type Selector interface {
	Kind() Kind
	Stringify() string // canonical CSS text of the selector
	String() string
	isSelector()
}

// Kind tells apart the two variants of Selector.
type Kind int8

// Variants of selectors.
const (
	SimpleKind Kind = iota
	CombinedKind
)

func (k Kind) String() string {
	if k == CombinedKind {
		return "combined"
	}
	return "simple"
}

// DefaultElement is rendered for a simple selector without any fragments.
const DefaultElement = "div"

var _ Selector = Simple{}
var _ Selector = Combined{}
