package order

import (
	"strings"

	"github.com/google/uuid"
)

// IDPrefix is the human-readable prefix for generated order ids
const IDPrefix = "ORD-"

// idSuffixLen is the number of uuid hex characters kept in the id
const idSuffixLen = 8

// NewID generates an order id of the form ORD-XXXXXXXX, taking the first
// 8 hex characters of a random uuid. Collisions are possible over the
// suffix space; callers retry on a duplicate key.
func NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	suffix := strings.ReplaceAll(id.String(), "-", "")[:idSuffixLen]
	return IDPrefix + strings.ToUpper(suffix), nil
}
