package domain

// Terminal heads exactly one Group: either a plain, user-requested anonymous task, or a
// labelled named task. Terminal is deliberately a small comparable struct (not an
// interface) so it can key a MultiBiMap and a Go map directly — see Design Notes §9
// ("avoid subtyping; pattern match"). Segments is interned: large graphs share long
// common path prefixes ("//services/api:build" under many override variants), and every
// scheduler collision check, worker-cache lookup, and log line compares or copies a
// Terminal, so collapsing repeats to one backing string pays for itself.
type Terminal struct {
	Task TaskID

	// Labelled is false for a Requested anonymous terminal.
	Labelled bool

	// Segments is the interned rendered filesystem path for a Labelled terminal, and the
	// zero InternedString otherwise. Equality of Segments across two Labelled terminals is
	// exactly the condition invariant I6 forbids from executing concurrently.
	Segments InternedString
}

// AnonymousTerminal builds the Terminal for a user-requested plain task.
func AnonymousTerminal(id TaskID) Terminal {
	return Terminal{Task: id}
}

// LabelledTerminal builds the Terminal for a named task, given its already-resolved
// (override-disambiguated) rendered segments.
func LabelledTerminal(id TaskID, renderedSegments string) Terminal {
	return Terminal{Task: id, Labelled: true, Segments: NewInternedString(renderedSegments)}
}
