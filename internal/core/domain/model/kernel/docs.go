// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and geographic points with great-circle distance.
// All value objects are immutable and must be created through their
// constructor functions; zero values fail validation.
package kernel
