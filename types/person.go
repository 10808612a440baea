package types

// Person represents one participant in the gift exchange.
//
// Name is the identity used by every constraint and by the resulting
// Solution; it must be unique within a Plan. Email is carried through
// opaquely for downstream notifiers and is never interpreted by the engine.
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Pair is an ordered giver/receiver edge.
//
// A Pair appears in three roles: as one edge of a Solution, as a forced edge
// (whitelist), or as a forbidden edge (blacklist and history exclusions).
type Pair struct {
	Giver    string `json:"giver" yaml:"giver"`
	Receiver string `json:"receiver" yaml:"receiver"`
}

// Reverse returns the pair with giver and receiver swapped.
func (p Pair) Reverse() Pair {
	return Pair{Giver: p.Receiver, Receiver: p.Giver}
}

// IsSelf reports whether the pair maps a person to themselves.
func (p Pair) IsSelf() bool {
	return p.Giver == p.Receiver
}

// String returns the pair in "giver -> receiver" form for logs and errors.
func (p Pair) String() string {
	return p.Giver + " -> " + p.Receiver
}
