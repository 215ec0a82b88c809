package component

// State is the position of a cursor within the leading part of a path.
//
// The front cursor only moves forward through the states and the back cursor
// only moves backward, so prefixes and roots are only ever produced at (or
// immediately after) the beginning of a path.
type State uint8

const (
	// AtBeginning: nothing consumed yet; a prefix may follow.
	AtBeginning State = iota
	// SeenPrefix: the prefix, if any, has been consumed; a root or a leading
	// current-dir may follow.
	SeenPrefix
	// NotAtBeginning: only body segments remain.
	NotAtBeginning
	// Done: the cursor is exhausted.
	Done
)

var stateNames = [...]string{
	AtBeginning:    "AtBeginning",
	SeenPrefix:     "SeenPrefix",
	NotAtBeginning: "NotAtBeginning",
	Done:           "Done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Invalid"
}
