package commission

// ListOptions selects and orders commissions for listing.
// An empty Status means no filter.
type ListOptions struct {
	Status Status
	Sort   SortKey
}

// ServiceOptions tunes the write policy of the Service.
type ServiceOptions struct {
	// StrictVocabulary rejects statuses and types outside the closed vocabularies.
	StrictVocabulary bool
}
