package extract

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"

	"github.com/aireadyhq/crawler/models"
)

// SchemaFromDoc parses every embedded JSON-LD block into SchemaRecords.
// Top-level arrays are unrolled, @graph containers are flattened, and
// array-valued @type yields one record per type. A block that fails to parse
// is skipped, never surfaced as an error.
func SchemaFromDoc(doc *goquery.Document) []models.SchemaRecord {
	var records []models.SchemaRecord

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return
		}

		if items, ok := payload.([]any); ok {
			for _, item := range items {
				records = append(records, schemaRecords(item)...)
			}
			return
		}
		records = append(records, schemaRecords(payload)...)
	})

	return records
}

func schemaRecords(v any) []models.SchemaRecord {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var out []models.SchemaRecord
	for _, t := range typeNames(obj["@type"]) {
		out = append(out, models.SchemaRecord{Type: t, Properties: obj})
	}

	if graph, ok := obj["@graph"].([]any); ok {
		for _, member := range graph {
			out = append(out, schemaRecords(member)...)
		}
	}

	return out
}

func typeNames(v any) []string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return []string{t}
		}
	case []any:
		var names []string
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				names = append(names, s)
			}
		}
		return names
	}
	return nil
}
