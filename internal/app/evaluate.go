package app

// evaluateSelection decides correctness of a submission: true iff the selected
// option IDs equal the correct option IDs as sets. Ordering and duplicates are
// irrelevant; a superset or subset of the correct options is wrong. Total over
// any pair of inputs, never errors.
func evaluateSelection(correctOptions, selectedOptions []string) bool {
	correct := make(map[string]struct{}, len(correctOptions))
	for _, id := range correctOptions {
		correct[id] = struct{}{}
	}
	selected := make(map[string]struct{}, len(selectedOptions))
	for _, id := range selectedOptions {
		selected[id] = struct{}{}
	}
	if len(correct) != len(selected) {
		return false
	}
	for id := range selected {
		if _, ok := correct[id]; !ok {
			return false
		}
	}
	return true
}
