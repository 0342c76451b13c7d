package domain

// Plan is the evaluated dependency graph of one build invocation.
type Plan struct {
	// Units in discovery order, entry units first.
	Units []*TranslationUnit
	// Headers keyed by absolute path.
	Headers map[string]*HeaderDependency
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{Headers: make(map[string]*HeaderDependency)}
}

// NeedsBuild reports whether at least one unit is stale.
func (p *Plan) NeedsBuild() bool {
	for _, u := range p.Units {
		if u.IsStale() {
			return true
		}
	}
	return false
}

// Stale returns the stale units in emission order.
func (p *Plan) Stale() []*TranslationUnit {
	var stale []*TranslationUnit
	for _, u := range p.Units {
		if u.IsStale() {
			stale = append(stale, u)
		}
	}
	return stale
}

// Objects returns the object paths of every unit in emission order.
func (p *Plan) Objects() []string {
	objects := make([]string, 0, len(p.Units))
	for _, u := range p.Units {
		objects = append(objects, u.Object)
	}
	return objects
}

// Unit returns the unit compiled from source, if present.
func (p *Plan) Unit(source string) (*TranslationUnit, bool) {
	for _, u := range p.Units {
		if u.Source == source {
			return u, true
		}
	}
	return nil, false
}
