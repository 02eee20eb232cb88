package models

// FAQEntry is one question/answer pair in the chat lookup table. Keywords
// holds comma-separated alternate phrasings of the question.
type FAQEntry struct {
	ID         string `db:"id" json:"id"`
	Question   string `db:"question" json:"question"`
	Answer     string `db:"answer" json:"answer"`
	Keywords   string `db:"keywords" json:"keywords"`
	Category   string `db:"category" json:"category"`
	SourceLink string `db:"source_link" json:"source_link"`
}
