package idgen

import "github.com/google/uuid"

// NewFunc generates session identifiers. Tests replace it for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier
func New() string { return NewFunc() }
