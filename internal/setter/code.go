package setter

// ResponseCode encodes the outcome of a setter operation.
type ResponseCode int

const (
	// ResponseNoop means no changes were needed.
	// The record already held the wanted address.
	ResponseNoop ResponseCode = iota

	// ResponseUpdated means the record should be rewritten
	// and we rewrote it.
	ResponseUpdated

	// ResponseFailed means the record should be rewritten
	// but we failed to finish the rewriting.
	ResponseFailed
)
