// Package domain contains the view models produced by the aggregation
// services and the shared sentinel values they degrade to. This package has
// zero external dependencies and is imported by every other internal package
// (repo, response, service).
package domain

// Unavailable is the single placeholder substituted for any field the
// upstream APIs did not supply. Every adapter and test references this
// constant; string literals of it must not be scattered elsewhere.
const Unavailable = "Unavailable"

// OrUnavailable returns s, or the Unavailable placeholder when s is empty.
func OrUnavailable(s string) string {
	if s == "" {
		return Unavailable
	}
	return s
}
