package registry

// SharedSkeleton is the HTML skeleton used by every built-in template.
const SharedSkeleton = "/templates/template.html"

// DefaultEntries lists the built-in templates. Locations are relative to the
// template filesystem handed to the loader.
func DefaultEntries() []Entry {
	return []Entry{
		{ID: "template1", Name: "Diseño Académico Clásico", HTML: SharedSkeleton, CSS: "/templates/template1.css"},
		{ID: "template2", Name: "Diseño Académico moderno", HTML: SharedSkeleton, CSS: "/templates/template2.css"},
		{ID: "template3", Name: "Diseño moderno", HTML: SharedSkeleton, CSS: "/templates/template3.css"},
		{ID: "template4", Name: "Diseño minimalista", HTML: SharedSkeleton, CSS: "/templates/template4.css"},
		{ID: "template5", Name: "Diseño biofílico", HTML: SharedSkeleton, CSS: "/templates/template5.css"},
	}
}

// Default returns a registry with the built-in templates.
func Default() *Registry {
	return MustNew(DefaultEntries()...)
}
