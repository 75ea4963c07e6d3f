package catalog

// Domain error kinds. Handlers map these to HTTP status codes in one
// place (writeDomainError); anything else is treated as an internal
// storage failure, logged and never exposed verbatim.

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// InvariantError means a business rule was violated: a duplicate like,
// a failed insert, an insert that returned no generated id.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return e.Msg }

// ForbiddenError means the principal lacks rights over an existing
// resource.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }
