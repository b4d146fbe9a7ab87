package slot

type Type string

const (
	TypeStandard Type = "standard"
	TypeHandicap Type = "handicap"
	TypeElectric Type = "electric"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeHandicap, TypeElectric:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
