package magnets

import "fmt"

// GeometryError reports a shape that cannot be constructed
type GeometryError struct {
	Kind Kind
	Msg  string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid %s geometry: %s", e.Kind, e.Msg)
}

func geometryErrorf(kind Kind, format string, args ...any) error {
	return &GeometryError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// FieldError reports an evaluation request a kernel cannot serve
type FieldError struct {
	Kind Kind
	Msg  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field: %s", e.Kind, e.Msg)
}
