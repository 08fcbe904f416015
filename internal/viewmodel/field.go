package viewmodel

import "fmt"

// Field identifies one input of the draft form.
type Field int

const (
	FieldSiteName Field = iota
	FieldLink
	FieldPassword
)

// String returns the wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldSiteName:
		return "siteName"
	case FieldLink:
		return "link"
	case FieldPassword:
		return "password"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField maps a form input name to its Field.
func ParseField(name string) (Field, error) {
	switch name {
	case "siteName":
		return FieldSiteName, nil
	case "link":
		return FieldLink, nil
	case "password":
		return FieldPassword, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}
