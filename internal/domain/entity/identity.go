package entity

import "github.com/google/uuid"

// LayoutEngineIdentity correlates every value produced by edits of one engine.
// Edits keep the identity, so registries can key per-engine state on it.
type LayoutEngineIdentity struct {
	id uuid.UUID
}

// NewLayoutEngineIdentity returns a fresh, unique identity.
func NewLayoutEngineIdentity() LayoutEngineIdentity {
	return LayoutEngineIdentity{id: uuid.New()}
}

// IsZero reports whether the identity was never assigned.
func (i LayoutEngineIdentity) IsZero() bool {
	return i.id == uuid.Nil
}

func (i LayoutEngineIdentity) String() string {
	return i.id.String()
}

// ParseLayoutEngineIdentity restores an identity from its String form.
func ParseLayoutEngineIdentity(s string) (LayoutEngineIdentity, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return LayoutEngineIdentity{}, err
	}
	return LayoutEngineIdentity{id: id}, nil
}
