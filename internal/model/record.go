// Package model holds the types shared by the repository, service and
// handler layers.
package model

// Record is the single persisted entity: a store-generated id and an
// arbitrary text payload.
type Record struct {
	ID   int32  `json:"id" db:"id"`
	Text string `json:"txt" db:"txt"`
}
