// Package layer contains the storage and derivation of Merkle tree layers.
//
// Every layer is a view into a single backing allocation,
// so building a tree costs one allocation for the digests
// plus one slice header per node, regardless of depth.
// Layers are derived iteratively from the leaves up,
// so stack depth does not grow with the leaf count.
//
// The leaf layer is ordered by the caller;
// consecutive pairs (0,1), (2,3), ... are combined with [cmhash.Combine].
// A layer of odd width leaves its last node without a sibling,
// and the tree either pairs that node with itself
// or promotes it unchanged, according to [Config.SelfPair].
package layer
