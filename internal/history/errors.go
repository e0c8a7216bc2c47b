package history

// ErrMissingID indicates an update or delete without an item id.
type ErrMissingID struct{}

func (e *ErrMissingID) Error() string {
	return "missing item id"
}
