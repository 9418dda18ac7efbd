/*
Package markov builds character-level k-gram frequency models of a text
corpus and synthesizes new text from them by weighted random sampling.

Two interchangeable model representations are provided: a prefix-tree
model and a dense-table model. Both are built in a single pass over the
corpus using cyclic windows, so every position has a defined successor,
and both report identical statistics for the same corpus and order. A
Generator walks a chosen model to produce a trajectory of a requested
length.

Models are immutable after construction and safe for read-only use.
*/
package markov
