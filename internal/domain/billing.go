package domain

// Package is the read model of the billing collaborator's subscription tier.
// The core only consumes it for usage reporting; the employee cap is not
// enforced on the workflow path.
type Package struct {
	Name          string `json:"name"`
	EmployeeLimit int32  `json:"employee_limit"`
	PriceCents    int32  `json:"price_cents"`
}

// CompanyUsage pairs a company's subscribed package with its current
// affiliation count, derived from approved requests.
type CompanyUsage struct {
	Company       string   `json:"company"`
	Package       *Package `json:"package,omitempty"`
	EmployeeCount int32    `json:"employee_count"`
}
