package domain

// Group is the set of tasks that share a Terminal: the terminal itself, plus every
// anonymous intermediate task between it and the nearest upstream named task, in
// topological order. The terminal is always the last element of Tasks.
type Group struct {
	Terminal Terminal
	Tasks    []TaskID
}

// Head returns the terminal task's own ID, which is always the last member.
func (g Group) Head() TaskID {
	return g.Tasks[len(g.Tasks)-1]
}
