package store

import (
	"fmt"
	"sync"

	"backend-quicklink/internal/models"

	"github.com/google/uuid"
)

// Store owns the request ledger and the staff roster. All mutations go
// through its methods; one mutex covers both collections because reference
// numbering reads the ledger size and appends in the same step.
type Store struct {
	mu       sync.Mutex
	requests []models.ServiceRequest
	staff    []models.Staff
}

func New() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}

// NextReference - formats the human-facing code for the given 1-based
// submission position: QL001, QL002, ... Zero-padding grows past 999.
func NextReference(seq int) string {
	return fmt.Sprintf("QL%03d", seq)
}
