// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the canonical identity record a submission's contact fields
// resolve to. The store assigns the internal ID; the UUID is the only
// identifier ever exposed outside the service.
type Customer struct {
	ID               int64         // Store-assigned internal id, used as the foreign reference from orders.
	UUID             uuid.UUID     // Externally exposed opaque identifier.
	Name             string        // Display name, last-write-wins across submissions.
	Email            string        // Primary contact email.
	Phone            string        // Contact phone number.
	ConsentToUpdates bool          // Marketing-consent flag.
	Stats            CustomerStats // Rolling aggregates carried in the customer's attribute bag.
	CreatedAt        time.Time     // Timestamp of when this customer was first created.
	UpdatedAt        time.Time     // Timestamp of the last modification to this customer's data.
}

// Identity is the raw contact tuple used to resolve a submission to a
// canonical Customer. Consent is optional: the catering channel does not
// collect it, and a nil value leaves the stored flag untouched.
type Identity struct {
	Name    string
	Email   string
	Phone   string
	Consent *bool
}

// Resolvable reports whether the identity carries enough contact
// information to attempt a lookup.
func (i Identity) Resolvable() bool {
	return i.Email != "" || i.Phone != ""
}
