package git

import "fmt"

// NotRepositoryError means no metadata directory was found above Start
type NotRepositoryError struct {
	Start string
}

func (e *NotRepositoryError) Error() string {
	return "not inside a git repository: " + e.Start
}

// RefError is a failure to read the branch heads subtree or a ref file
type RefError struct {
	Path string
	Err  error
}

func (e *RefError) Error() string {
	return fmt.Sprintf("read ref %s: %v", e.Path, e.Err)
}

func (e *RefError) Unwrap() error {
	return e.Err
}

// ObjectError is a failure to read or inflate a loose object
type ObjectError struct {
	Hash string
	Path string
	Err  error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("object %s (%s): %v", e.Hash, e.Path, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

// InvariantError reports an internal consistency check that failed.
// It indicates a corrupted repository or a bug, never a user mistake.
type InvariantError struct {
	Stage string
	Want  int
	Got   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: expected %d commits, got %d", e.Stage, e.Want, e.Got)
}
