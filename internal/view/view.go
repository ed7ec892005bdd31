// Package view holds the state of the blog generator screen.
//
// State is a value. Every UI event is a method returning the next State, so
// the same screen can be hosted by a web page, a terminal program or a chat
// bot without the host owning any of the rules.
package view

import (
	"github.com/futig/blog-generator/internal/entity"
)

const (
	SubmitLabelIdle    = "Generate Blog"
	SubmitLabelLoading = "Generating..."
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Submission is what Submit hands to the host: the prompt as it was at
// submit time and the sequence number the resolution must carry.
type Submission struct {
	Seq    uint64
	Prompt string
}

// Body returns the request body for the generation endpoint.
func (s Submission) Body() *entity.GenerateBlogRequest {
	return &entity.GenerateBlogRequest{Prompt: s.Prompt}
}

// State is the whole screen: prompt, request state and credits panel.
// The zero value is the initial screen.
type State struct {
	prompt         string
	phase          Phase
	result         entity.BlogResult
	errMessage     string
	creditsVisible bool
	seq            uint64
}

// New returns the initial screen state.
func New() State {
	return State{}
}

func (s State) Prompt() string       { return s.prompt }
func (s State) Phase() Phase         { return s.phase }
func (s State) Loading() bool        { return s.phase == PhaseLoading }
func (s State) CreditsVisible() bool { return s.creditsVisible }
func (s State) ErrorMessage() string { return s.errMessage }

// Result returns a copy of the generated blog, or nil unless the last
// request succeeded.
func (s State) Result() *entity.BlogResult {
	if s.phase != PhaseSucceeded {
		return nil
	}
	res := s.result
	return &res
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return s.prompt != "" && s.phase != PhaseLoading
}

func (s State) SubmitLabel() string {
	if s.phase == PhaseLoading {
		return SubmitLabelLoading
	}
	return SubmitLabelIdle
}

// EditPrompt replaces the prompt. It is allowed while a request is in
// flight and never touches the submitted body.
func (s State) EditPrompt(text string) State {
	s.prompt = text
	return s
}

// Submit moves the screen to loading and returns the submission to send.
// On a failed precondition the state is returned unchanged.
func (s State) Submit() (State, Submission, error) {
	if s.phase == PhaseLoading {
		return s, Submission{}, entity.ErrRequestInFlight
	}
	if s.prompt == "" {
		return s, Submission{}, entity.ErrEmptyPrompt
	}

	s.seq++
	s.phase = PhaseLoading
	s.result = entity.BlogResult{}
	s.errMessage = ""

	return s, Submission{Seq: s.seq, Prompt: s.prompt}, nil
}

// Succeed resolves the in-flight submission with a result.
func (s State) Succeed(sub Submission, result entity.BlogResult) State {
	if !s.awaiting(sub) {
		return s
	}
	s.phase = PhaseSucceeded
	s.result = result
	return s
}

// Fail resolves the in-flight submission with the fixed user-facing
// message. The cause is not kept.
func (s State) Fail(sub Submission) State {
	if !s.awaiting(sub) {
		return s
	}
	s.phase = PhaseFailed
	s.errMessage = entity.RequestFailureMessage
	return s
}

// Resolve dispatches exactly one of Succeed or Fail.
func (s State) Resolve(sub Submission, result *entity.BlogResult, err error) State {
	if err != nil || result == nil {
		return s.Fail(sub)
	}
	return s.Succeed(sub, *result)
}

func (s State) ToggleCredits() State {
	s.creditsVisible = !s.creditsVisible
	return s
}

func (s State) CloseCredits() State {
	s.creditsVisible = false
	return s
}

// awaiting reports whether sub is the submission currently in flight.
func (s State) awaiting(sub Submission) bool {
	return s.phase == PhaseLoading && sub.Seq == s.seq
}
