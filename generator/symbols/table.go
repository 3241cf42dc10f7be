package symbols

import "fmt"

type Table map[string]Kind

func NewTable() Table {
	return make(Table)
}

func (t Table) Add(entry Entry) error {
	if entry.Kind == None {
		return fmt.Errorf("invalid symbol kind: %s", entry.Kind.String())
	}
	if entry.Kind > maximumKindValue {
		return fmt.Errorf("unknown symbol kind: %d", entry.Kind)
	}
	if entry.Name == "" {
		return fmt.Errorf("empty symbol name")
	}

	if _, ok := t[entry.Name]; ok {
		return fmt.Errorf("symbol already exists: %s", entry.Name)
	}

	t[entry.Name] = entry.Kind
	return nil
}

func (t Table) Get(name string) Kind {
	return t[name]
}
