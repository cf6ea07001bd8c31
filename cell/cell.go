package cell

// Cell is one grid position: its kind and the flags written by the last search.
type Cell struct {
	Kind    Kind
	Visited bool // settled by the last search
	OnPath  bool // on the path reconstructed by the last search
}

// State is the read-only snapshot a renderer polls once per frame per cell.
type State struct {
	Kind    Kind
	Visited bool
	OnPath  bool
}

// Role returns the display role of the snapshot's kind.
func (s State) Role() Role { return s.Kind.Role() }

// State returns the render snapshot of c.
// Start and End are seed points of every run and always report Visited and OnPath.
func (c Cell) State() State {
	seed := c.Kind.Endpoint()
	return State{
		Kind:    c.Kind,
		Visited: c.Visited || seed,
		OnPath:  c.OnPath || seed,
	}
}

// Reset clears the run flags. Kinds outside {Start, End, Wall, Mud} fall back to Blank.
func (c *Cell) Reset() {
	c.Visited = false
	c.OnPath = false
	if !c.Kind.persistent() {
		c.Kind = Blank
	}
}
