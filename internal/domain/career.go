package domain

// CareerRecord is static reference data describing one career within a
// pathway. Records are immutable; catalog order is the ranking.
type CareerRecord struct {
	Name         string
	Demand       string
	Trend        string
	FocusAreas   []string
	Institutions []string
	Entry        string
}
