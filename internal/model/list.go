package model

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Collection names a stored resource collection.
type Collection string

const (
	CollectionServices      Collection = "services"
	CollectionQuotes        Collection = "quotes"
	CollectionConsultations Collection = "consultations"
)

// ListOptions carries filter, pagination and ordering for listing quotes and
// consultations. Records are always ordered by created_at; newest first unless
// Ascending is set.
type ListOptions struct {
	// Status filters by triage state. Empty returns every record.
	Status    Status
	Limit     int
	Offset    int
	Ascending bool
}
