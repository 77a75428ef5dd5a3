package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pigeonhole/go-formkit/pkg/form"
)

// CreateCourseAction returns a submission action that normalises the course
// values and writes them as JSON to out. It stands in for the backend call in
// CLI and example wiring.
func CreateCourseAction(out io.Writer) form.Action {
	return func(ctx context.Context, values map[string]any) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		normalized := NormalizeCourseValues(values)
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(normalized); err != nil {
			return fmt.Errorf("courses: encode course: %w", err)
		}
		return nil
	}
}
