// Package rider contains the Rider aggregate: availability state and the
// weak back-reference to the order currently claiming the rider. The
// at-most-one-active-claim rule is enforced here in memory and by a
// conditional update in the repository for concurrent claimants.
package rider
