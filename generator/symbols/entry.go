package symbols

import "fmt"

// Entry is a struct that represents a single exported symbol.
type Entry struct {
	Name string
	Kind Kind
}

func (e Entry) String() string {
	return fmt.Sprintf("{Name: %s, Kind: %s}", e.Name, e.Kind)
}
