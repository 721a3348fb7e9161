// Package records implements the denormalization primitives used to reshape
// Steam Web API responses: grouping and indexing flat collections, joining
// item collections with their shared description metadata, and normalizing
// the sparse object-shaped fields Steam returns where callers expect lists.
//
// Example usage:
//
//	items := records.JoinDescriptions(assets, descriptions, "appid", "classid")
//
// All operations treat their inputs as read-only and return freshly built
// values; nothing in this package retains state between calls.
package records
