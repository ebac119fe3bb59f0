// Package subscribers exports stored contact subscribers.
package subscribers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/leterax/portfolio/internal/storage"
)

// Row is one subscriber as written to CSV.
type Row struct {
	ID        int64  `csv:"id"`
	Email     string `csv:"email"`
	CreatedAt string `csv:"created_at"`
}

// ToRow converts a stored subscriber into its CSV form.
func ToRow(sub storage.Subscriber) Row {
	return Row{
		ID:        sub.ID,
		Email:     sub.Email,
		CreatedAt: sub.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ExportCSV writes every subscriber in store to w, header first, and
// returns how many rows were written.
func ExportCSV(ctx context.Context, store storage.SubscriberStore, w io.Writer) (int, error) {
	if store == nil {
		return 0, fmt.Errorf("subscriber store is required")
	}
	subs, err := store.ListSubscribers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list subscribers: %w", err)
	}

	rows := make([]Row, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, ToRow(sub))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, fmt.Errorf("writing subscribers: %w", err)
	}
	return len(rows), nil
}
