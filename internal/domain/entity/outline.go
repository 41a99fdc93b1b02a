package entity

// OutlineSection é uma seção do sumário executivo com seus bullets.
type OutlineSection struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets"`
}

// SummaryOutline is the fixed structure of an executive summary,
// ready to be expanded into narrative text.
type SummaryOutline struct {
	Title    string           `json:"title"`
	Audience string           `json:"audience"`
	Goal     string           `json:"goal"`
	Sections []OutlineSection `json:"sections"`
}
