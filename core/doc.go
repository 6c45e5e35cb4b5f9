// Package core defines the contact Graph type used throughout episim:
// an undirected, unweighted simple graph over opaque string vertex IDs.
//
// What:
//
//   - Graph stores a vertex set and a symmetric adjacency relation.
//   - Self-loops and parallel edges are rejected; edges are set-valued.
//   - Vertices(), NeighborIDs() return lexicographically sorted slices,
//     so every enumeration surface is deterministic.
//   - Clone() deep-copies; Induce() derives the subgraph on retained
//     vertices without touching the receiver.
//
// Why:
//
//   - Vaccination is modeled as vertex removal: Induce() produces the
//     reduced graph consumed by the propagation engine, keeping the
//     loaded graph immutable across trial configurations.
//   - Deterministic iteration order is what makes seeded simulation
//     runs byte-reproducible.
//
// Concurrency:
//
//   - A single sync.RWMutex guards all state. Mutation and reads are safe
//     across goroutines; after selection completes the simulation layers
//     only ever read.
//
// Errors:
//
//   - ErrEmptyVertexID: vertex ID is the empty string.
//   - ErrVertexNotFound: operation referenced a missing vertex.
//   - ErrSelfLoop: edge with identical endpoints.
//
// Complexity:
//
//   - AddVertex/HasVertex/HasEdge: O(1); AddEdge: O(1).
//   - Vertices: O(V log V); NeighborIDs: O(d log d).
//   - Clone/Induce: O(V + E).
package core
