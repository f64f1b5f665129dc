package queue

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// writeLines writes every value followed by '\n'.
func writeLines[T any](w io.Writer, values iter.Seq[T]) (int64, error) {
	var total int64
	for v := range values {
		n, err := fmt.Fprintln(w, v)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "queue: write element")
		}
	}
	return total, nil
}

// joinValues renders values on one line separated by single spaces.
func joinValues[T any](values iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range values {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
