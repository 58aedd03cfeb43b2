package result

// Kind identifies the variant of a Result.
type Kind int

const (
	ErrKind Kind = iota
	OkKind
)

func (k Kind) String() string {
	switch k {
	case OkKind:
		return "ok"
	case ErrKind:
		return "err"
	default:
		return "unknown"
	}
}
