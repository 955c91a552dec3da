// Package postgres contains PostgreSQL implementations of the store
// interfaces. Stores translate database failures into the sentinel
// errors defined by the store package; constraint violations (foreign
// keys, unique indexes) are detected through pgx error codes.
package postgres
