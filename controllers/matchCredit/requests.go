package matchCreditController

// CreateMatchRequest is the validated payload for creating a match credit.
// The validator parses, range-checks and defaults it before the handler runs.
// MatchPercentage is a pointer so an omitted field (defaults to 100) can be
// told apart from an explicit 0 (rejected).
type CreateMatchRequest struct {
	CustomerID      uint     `json:"customerId"`
	MachineID       uint     `json:"machineId"`
	InitialAmount   float64  `json:"initialAmount"`
	MatchPercentage *float64 `json:"matchPercentage"`
	Notes           string   `json:"notes"`
}

// MatchActionRequest identifies the transaction a redeem/void acts on.
type MatchActionRequest struct {
	TransactionID uint `json:"transactionId"`
}
