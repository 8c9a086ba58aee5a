package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"school-timetabler/internal/domain"
)

// LoadJSON reads a single JSON document containing the full input
// bundle (teachers, subjects, classes, rooms, availability, requests)
// and converts it into a domain.Input. It does not validate — call
// Validate on the result before handing it to the solver.
func LoadJSON(path string) (domain.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Input{}, fmt.Errorf("reading input file %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Input{}, fmt.Errorf("parsing input file %s: %w", path, err)
	}

	in, err := doc.toInput()
	if err != nil {
		return domain.Input{}, fmt.Errorf("converting input file %s: %w", path, err)
	}
	return in, nil
}
