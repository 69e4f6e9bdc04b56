package models

// RollNamespace is one role's slice of the roll-number registry: the
// name→roll map plus the monotonically increasing allocation counter.
// Counter values are issued at most once and never decremented, so a roll,
// once handed out, is never reused even if the mapping were edited by hand.
type RollNamespace struct {
	Role    Role              `json:"role"`
	Counter int               `json:"counter"`
	Names   map[string]string `json:"names"`
}

// NewRollNamespace returns an empty namespace for role.
func NewRollNamespace(role Role) *RollNamespace {
	return &RollNamespace{Role: role, Names: map[string]string{}}
}

// RollRegistry holds the three independent role namespaces.
type RollRegistry struct {
	Namespaces map[Role]*RollNamespace
}

// NewRollRegistry returns a registry with all known namespaces present.
func NewRollRegistry() *RollRegistry {
	r := &RollRegistry{Namespaces: map[Role]*RollNamespace{}}
	for _, role := range AllRoles {
		r.Namespaces[role] = NewRollNamespace(role)
	}
	return r
}

// Namespace returns the slice for role, creating it if a partially written
// store left it out.
func (r *RollRegistry) Namespace(role Role) *RollNamespace {
	ns, ok := r.Namespaces[role]
	if !ok {
		ns = NewRollNamespace(role)
		r.Namespaces[role] = ns
	}
	if ns.Names == nil {
		ns.Names = map[string]string{}
	}
	return ns
}
