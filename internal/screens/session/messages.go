package session

// feedbackDoneMsg ends the feedback pause. seq ties it to the answer that
// started the pause so a stale tick cannot skip the next question.
type feedbackDoneMsg struct {
	seq int
}

// finishMsg is sent when the player confirms the final submission.
type finishMsg struct{}
