package domain

// TeamGroup is one company's roster as seen from an employee's approved
// request history. Affiliation is derived, never stored: the groups are
// recomputed from the request store on each query.
type TeamGroup struct {
	Company    string           `json:"company"`
	Colleagues []ProfileSummary `json:"colleagues"`
}
