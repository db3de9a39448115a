package domain

// ChangeTracker records which sale-level fields an update touched, so the
// repository can build UPDATE mutations for changed columns only. Item-level
// changes are tracked on the items themselves.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty reports whether the given field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// HasChanges reports whether any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// Clear removes all dirty markers. Repositories call it after a commit.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}
