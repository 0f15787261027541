package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
)

// ExtractJSON returns the span of output from the first '{' to the last '}'.
// Models often wrap their JSON in prose or code fences; the span is taken
// as-is and never repaired.
func ExtractJSON(output string) (string, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: no JSON object in output", domain.ErrFormat)
	}
	return output[start : end+1], nil
}

// Decode extracts the JSON span from output and unmarshals it into v.
func Decode(output string, v any) error {
	span, err := ExtractJSON(output)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	return nil
}
