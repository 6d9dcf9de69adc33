// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Claim is the predicate function for claim builders.
type Claim func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)
