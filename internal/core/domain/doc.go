// Package domain defines the core business entities for the ADGM corporate agent.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An extracted document as an ordered paragraph sequence
//   - Chunk: A retrieval unit sliced from a reference text
//   - Issue: A compliance finding reported by the oracle
//   - ComplianceReport: The structured output of a review run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
