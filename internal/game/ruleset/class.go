package ruleset

// ClassDomains returns the two domains of className. The lookup is exact and case-sensitive;
// unknown names yield an empty slice.
//
// Postcondition: the returned slice is a copy.
func (r *Rules) ClassDomains(className string) []string {
	domains, ok := r.domainsByClass[className]
	if !ok {
		return []string{}
	}
	out := make([]string, len(domains))
	copy(out, domains)
	return out
}

// AllClassNames returns every class name in rule-file order.
func (r *Rules) AllClassNames() []string {
	out := make([]string, 0, len(r.Classes))
	for _, c := range r.Classes {
		out = append(out, c.Name)
	}
	return out
}
