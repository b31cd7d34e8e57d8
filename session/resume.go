package session

// ResumeData is the Resume Data record from spec.md §3: it exists from the
// moment READY is processed through to session termination, and is either
// carried forward (transient disconnect) or wiped (invalid session) on the
// next connect attempt.
type ResumeData struct {
	Token     string
	SessionID string
	LastSeq   int64
}
