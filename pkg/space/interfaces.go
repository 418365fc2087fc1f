package space

// Locatable is anything with a position in the plane.
type Locatable interface {
	Location() Location
}
