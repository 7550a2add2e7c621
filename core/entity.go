package core

// Entity is an opaque identifier grouping associated components.
// Zero is reserved as the "no entity" value.
type Entity uint64

// EntityNone marks the absence of an entity
const EntityNone Entity = 0
