package cv

import "fmt"

// Kind identifies which of the seven payload arms a Value currently
// holds.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		IntKind:    "Int",
		FloatKind:  "Float",
		StringKind: "String",
		ArrayKind:  "Array",
		ObjectKind: "Object",
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
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Int":    IntKind,
		"Float":  FloatKind,
		"String": StringKind,
		"Array":  ArrayKind,
		"Object": ObjectKind,
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
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

// IsScalar reports whether the kind owns no child Values.
func (k Kind) IsScalar() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}
