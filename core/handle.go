package core

import "fmt"

// Handle addresses a record in an arena registry
// Gen distinguishes reuses of the same index; the zero Handle is never issued
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the unset handle
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Gen)
}
