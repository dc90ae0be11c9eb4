package services

import "fmt"

// NotFoundError carries the subject that failed to resolve so the
// transport layer can tell "post missing" apart from "you have no blog".
type NotFoundError struct {
	Subject string
	ID      uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d was not found", e.Subject, e.ID)
}

// ForbiddenError means the acting user is not the owner of the post
// they tried to mutate.
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("only the author can %s this post", e.Action)
}
