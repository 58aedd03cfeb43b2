package option

// Kind identifies the variant of an Option.
type Kind int

const (
	NoneKind Kind = iota
	SomeKind
)

func (k Kind) String() string {
	switch k {
	case SomeKind:
		return "some"
	case NoneKind:
		return "none"
	default:
		return "unknown"
	}
}
