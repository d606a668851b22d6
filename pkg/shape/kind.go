package shape

// Kind identifies the geometric primitive a descriptor draws.
type Kind struct {
	id   kindID
	name string // raw name, kept for unknown kinds
}

type kindID uint8

const (
	kindUnknown kindID = iota
	kindCircle
	kindSquare
	kindTriangle
)

// Known shape kinds.
var (
	Circle   = Kind{id: kindCircle, name: "circle"}
	Square   = Kind{id: kindSquare, name: "square"}
	Triangle = Kind{id: kindTriangle, name: "triangle"}
)

// KindUnknown returns the unknown kind with the given raw name.
func KindUnknown(name string) Kind {
	return Kind{id: kindUnknown, name: name}
}

// Kinds lists the known kinds in declaration order.
func Kinds() []Kind { return []Kind{Circle, Square, Triangle} }

// ParseKind maps a shape name to its Kind. Matching is exact, as names come
// from scene files written against a fixed schema.
func ParseKind(s string) Kind {
	switch s {
	case "circle":
		return Circle
	case "square":
		return Square
	case "triangle":
		return Triangle
	default:
		return KindUnknown(s)
	}
}

// Known reports whether k is one of circle, square or triangle.
func (k Kind) Known() bool { return k.id != kindUnknown }

// Name returns the kind's name, or the raw name for unknown kinds.
func (k Kind) Name() string { return k.name }

func (k Kind) String() string {
	if k.Known() {
		return k.name
	}
	if k.name == "" {
		return "unknown"
	}
	return "unknown(" + k.name + ")"
}

// IsCircle reports whether k is [Circle].
func (k Kind) IsCircle() bool { return k.id == kindCircle }

// IsSquare reports whether k is [Square].
func (k Kind) IsSquare() bool { return k.id == kindSquare }

// IsTriangle reports whether k is [Triangle].
func (k Kind) IsTriangle() bool { return k.id == kindTriangle }

// MarshalText encodes the kind by name. Unknown kinds round-trip their raw name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.name), nil
}

// UnmarshalText decodes a kind name with [ParseKind]. It never fails.
func (k *Kind) UnmarshalText(b []byte) error {
	*k = ParseKind(string(b))
	return nil
}
