package extract

import (
	"testing"
)

func TestSchemaFromDoc(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantTypes []string
	}{
		{
			name: "single object",
			html: `<script type="application/ld+json">{"@type":"Organization","name":"Acme"}</script>`,
			wantTypes: []string{"Organization"},
		},
		{
			name: "top-level array",
			html: `<script type="application/ld+json">[{"@type":"Organization"},{"@type":"WebSite"}]</script>`,
			wantTypes: []string{"Organization", "WebSite"},
		},
		{
			name: "graph container",
			html: `<script type="application/ld+json">{"@context":"https://schema.org","@graph":[{"@type":"Organization"},{"@type":"FAQPage"}]}</script>`,
			wantTypes: []string{"Organization", "FAQPage"},
		},
		{
			name: "array-valued type",
			html: `<script type="application/ld+json">{"@type":["Product","Thing"],"name":"Gizmo"}</script>`,
			wantTypes: []string{"Product", "Thing"},
		},
		{
			name: "invalid json skipped",
			html: `<script type="application/ld+json">{not json</script>
			       <script type="application/ld+json">{"@type":"WebSite"}</script>`,
			wantTypes: []string{"WebSite"},
		},
		{
			name:      "no schema blocks",
			html:      `<p>plain page</p>`,
			wantTypes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, "<html><head>"+tt.html+"</head><body></body></html>")
			records := SchemaFromDoc(doc)

			if len(records) != len(tt.wantTypes) {
				t.Fatalf("got %d records, want %d: %+v", len(records), len(tt.wantTypes), records)
			}
			for i, want := range tt.wantTypes {
				if records[i].Type != want {
					t.Errorf("records[%d].Type = %q, want %q", i, records[i].Type, want)
				}
			}
		})
	}
}

func TestSchemaFromDocKeepsProperties(t *testing.T) {
	doc := docFromHTML(t, `<html><head><script type="application/ld+json">{"@type":"Organization","name":"Acme"}</script></head></html>`)
	records := SchemaFromDoc(doc)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Properties["name"] != "Acme" {
		t.Errorf("Properties[name] = %v, want Acme", records[0].Properties["name"])
	}
}
