package card

// Pack is a named expansion bundle
type Pack struct {
	ID   string
	Name string
}

// Registry holds packs in the order they were first declared.
// Declaring an id again replaces its name but keeps its position.
type Registry struct {
	order []string
	names map[string]string
}

// NewRegistry creates an empty pack registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Declare records a pack, returning true if the id was already known
func (r *Registry) Declare(id, name string) bool {
	_, seen := r.names[id]
	if !seen {
		r.order = append(r.order, id)
	}
	r.names[id] = name
	return seen
}

// Name returns the display name of a pack
func (r *Registry) Name(id string) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}

// Packs returns all packs in discovery order
func (r *Registry) Packs() []Pack {
	packs := make([]Pack, 0, len(r.order))
	for _, id := range r.order {
		packs = append(packs, Pack{ID: id, Name: r.names[id]})
	}
	return packs
}

// IDs returns the pack ids in discovery order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of distinct packs
func (r *Registry) Len() int {
	return len(r.order)
}
