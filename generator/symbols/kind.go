// Package symbols tracks which names the generated SDK exports and
// whether each one lives in the type or the value namespace. The
// planner uses it to reject colliding schema names and to decide which
// re-exported bindings need a type-only marker.
package symbols

type Kind uint8

const (
	// maximumKindValue is the value of the highest currently known Kind.
	maximumKindValue = 2

	// None is the default value for Kind.
	// Getting a Kind of None means the name is not exported.
	None Kind = 0

	// TypeSymbol is a name that only exists in the type namespace and
	// is erased from compiled output.
	TypeSymbol Kind = 1

	// ValueSymbol is a name that exists at runtime.
	ValueSymbol Kind = 2
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case TypeSymbol:
		return "Type"
	case ValueSymbol:
		return "Value"
	default:
		return "Unknown"
	}
}
