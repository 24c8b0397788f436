package report

// TermPair documents one equivalence between TOPS and Cyman vocabulary.
type TermPair struct {
	TOPS  string `json:"tops"`
	Cyman string `json:"cyman"`
}

// TerminologyMapping is the read-only table of equivalent terms between the
// two systems. It is presentation metadata consumed by renderers and
// exporters (for the terminology note on reports), never by the
// reconciliation logic itself.
var TerminologyMapping = []TermPair{
	{TOPS: "Container Number", Cyman: "Unit No"},
	{TOPS: "Job Complete", Cyman: "In Activity"},
	{TOPS: "In Progress", Cyman: "MovementPre"},
}
