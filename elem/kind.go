package elem

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	RootKind
	TextKind
	BoxKind
	ListKind
	ItemKind
	ButtonKind
	InputKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "null",
		RootKind:   "root",
		TextKind:   "text",
		BoxKind:    "box",
		ListKind:   "list",
		ItemKind:   "item",
		ButtonKind: "button",
		InputKind:  "input",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":   NullKind,
		"root":   RootKind,
		"text":   TextKind,
		"box":    BoxKind,
		"list":   ListKind,
		"item":   ItemKind,
		"button": ButtonKind,
		"input":  InputKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		RootKind,
		TextKind,
		BoxKind,
		ListKind,
		ItemKind,
		ButtonKind,
		InputKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case RootKind, BoxKind, ListKind, ItemKind:
		return false
	default:
		return true
	}
}
