// Package service provides application-level services for managing cats
// and cat breeds. Services own the CRUD business logic: they translate
// between transport DTOs and domain entities through the mapping package
// and issue exactly one logical unit of work per call against the store.
//
// Error handling principles:
//  1. Services never catch and suppress store errors; sentinel errors
//     propagate unchanged so callers can check them with errors.Is().
//  2. The API layer is the only place translating internal failures into
//     transport-level status codes.
package service
