// Package domain contains the core entities of the Cats API: cats,
// cat breeds, and users. Entities carry their own validation; they hold
// no persistence or transport concerns.
package domain
