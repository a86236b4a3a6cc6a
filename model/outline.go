package model

// OutlineEntry is one heading in a document outline. Page uses the output
// convention of 0-based page numbers, converted from the 1-based numbers
// carried on LineRecord.
type OutlineEntry struct {
	Level Label  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// DocumentOutline is the final result of classifying one document: the
// detected title (empty when no line was labeled Title) and the ordered
// heading entries.
type DocumentOutline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// EntryCount returns the number of outline entries.
func (o *DocumentOutline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Outline)
}

// EntriesAtLevel returns all entries with the given heading level.
func (o *DocumentOutline) EntriesAtLevel(level Label) []OutlineEntry {
	if o == nil {
		return nil
	}
	var result []OutlineEntry
	for _, e := range o.Outline {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}

// HasTitle returns true if a title was detected.
func (o *DocumentOutline) HasTitle() bool {
	return o != nil && o.Title != ""
}
