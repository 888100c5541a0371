package ideaform

// SubmissionState is the lifecycle of the most recent submission.
type SubmissionState int

const (
	Idle SubmissionState = iota
	Pending
	Succeeded
	Failed
)

func (s SubmissionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
