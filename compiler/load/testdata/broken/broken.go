package broken

// Status is marked but is not a struct.
//
// daogen:entity
type Status int
