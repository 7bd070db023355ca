// Package kernel contains shared value objects used across all aggregates:
// UUID identity and Money amounts. These are the building blocks of the domain
// model and carry their own validation so aggregates can rely on them being
// well-formed once constructed.
package kernel
