package secondary

import "context"

// Confirmer asks the user a yes/no question. It blocks until an answer is
// read.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
