// Package mapping contains the transport DTO types and the pure
// projection functions converting between persisted entities and DTOs.
// Mapping is stateless, side-effect-free and never fails; validation
// belongs to the API boundary and the stores.
package mapping
