package acquire

import (
	"fmt"

	"github.com/google/uuid"
)

// Batch tracks one upload of several files through probing.
type Batch struct {
	ID        string
	Total     int
	Processed int
	Added     int
	Failed    int
	Bytes     int64
}

// NewBatch starts a batch expecting total files.
func NewBatch(total int) *Batch {
	return &Batch{ID: uuid.NewString(), Total: total}
}

// Record counts one processed file. Calls past Total are ignored.
func (b *Batch) Record(added bool) {
	if b.Done() {
		return
	}
	b.Processed++
	if added {
		b.Added++
	} else {
		b.Failed++
	}
}

// Done reports whether every file has been processed.
func (b *Batch) Done() bool {
	return b.Processed >= b.Total
}

// Summary returns the completion message.
func (b *Batch) Summary() string {
	return fmt.Sprintf("Added %d song(s) to playlist", b.Added)
}
