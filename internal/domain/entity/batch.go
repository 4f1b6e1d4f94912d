package entity

// BatchOutcome pairs one raw input with its single outcome. Exactly one of
// Result and Err is set.
type BatchOutcome struct {
	Input  string        `json:"input"`
	Result *LookupResult `json:"result,omitempty"`
	Err    error         `json:"-"`
	Error  string        `json:"error,omitempty"`
}

// BatchResult preserves input order and is not mutated once the batch
// completes.
type BatchResult struct {
	Outcomes   []BatchOutcome `json:"outcomes"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
}

func (b BatchResult) Total() int {
	return b.Successful + b.Failed
}
