package pipeline

// Reason classifies why a source failed. Empty means success.
type Reason string

const (
	// ReasonNotFound: an expected artifact is missing.
	ReasonNotFound Reason = "NotFound"
	// ReasonInvalidFormat: the metadata or caption document is malformed.
	ReasonInvalidFormat Reason = "InvalidFormat"
	// ReasonInconsistentState: caption discovery succeeded but the
	// caption artifact is absent.
	ReasonInconsistentState Reason = "InconsistentState"
	// ReasonServiceUnavailable: the rewrite backend failed.
	ReasonServiceUnavailable Reason = "ServiceUnavailable"
	// ReasonNoRewriteOutput: the rewrite backend answered with nothing.
	ReasonNoRewriteOutput Reason = "NoRewriteOutput"
	// ReasonIOFailure: a filesystem or collaborator I/O error.
	ReasonIOFailure Reason = "IOFailure"
)

// Result is the per-source outcome: either a final transcript path or a
// typed failure reason. A source never half-succeeds.
type Result struct {
	URL            string
	WorkDir        string
	TranscriptPath string
	UsedCaptions   bool
	Reason         Reason
	Err            error
}

// Failed reports whether the source ended in the FAILED state.
func (r Result) Failed() bool {
	return r.Err != nil
}
