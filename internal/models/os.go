package models

// OperatingSystem is one encyclopedia entry on the blog side of the app.
// Entries are static catalog data, addressed by slug.
type OperatingSystem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ShortDesc string `json:"shortDesc"`
	Image     string `json:"image"`
	FullDesc  string `json:"fullDesc"`
	History   string `json:"history"`
	Features  string `json:"features"`
}
