package ornament

import "fmt"

// ScopeKind - пространство имён коллекций орнаментов.
type ScopeKind uint8

const (
	ScopeClient ScopeKind = iota + 1
	ScopeTemplate
)

// ParseScopeKind принимает как единственное, так и множественное число ("client", "clients").
func ParseScopeKind(s string) (ScopeKind, error) {
	switch s {
	case "client", "clients":
		return ScopeClient, nil
	case "template", "templates":
		return ScopeTemplate, nil
	}
	return 0, fmt.Errorf("unknown scope kind %q", s)
}

func (k ScopeKind) String() string {
	switch k {
	case ScopeClient:
		return "client"
	case ScopeTemplate:
		return "template"
	}
	return "unknown"
}

// PathSegment - сегмент URL для API ("clients" / "templates").
func (k ScopeKind) PathSegment() string {
	return k.String() + "s"
}

// Scope - владелец коллекции: приглашение клиента или шаблон каталога.
type Scope struct {
	Kind ScopeKind
	ID   string
}

func (s Scope) String() string {
	return s.Kind.String() + ":" + s.ID
}
