// Package models defines the documents written by txtindex.
package models

// SchemaVersion is the layout version of the index document.
const SchemaVersion = 1

// Item is one entry of the index document, one per qualifying data file.
type Item struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	AddedAt string `json:"addedAt"`
}

// Index is the document listing every item in display order.
type Index struct {
	SchemaVersion int    `json:"schemaVersion"`
	Items         []Item `json:"items"`
}

// Meta is the small version record consumers poll before fetching the index.
type Meta struct {
	Version   int    `json:"version"`
	UpdatedAt string `json:"updatedAt"`
	IndexURL  string `json:"indexUrl"`
}
