package view

import (
	"errors"
	"testing"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() entity.BlogResult {
	return entity.BlogResult{
		GeneratedText: "A",
		Summary:       "B",
		Sentiment:     "C",
		Category:      "D",
		ImageURL:      "http://x/y.png",
	}
}

func TestNew_InitialState(t *testing.T) {
	s := New()

	assert.Equal(t, "", s.Prompt())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.False(t, s.Loading())
	assert.False(t, s.CreditsVisible())
	assert.False(t, s.CanSubmit())
	assert.Nil(t, s.Result())
	assert.Empty(t, s.ErrorMessage())
	assert.Equal(t, SubmitLabelIdle, s.SubmitLabel())
}

func TestSubmit_DisabledForEmptyPrompt(t *testing.T) {
	s := New().EditPrompt("")
	assert.False(t, s.CanSubmit())

	next, sub, err := s.Submit()
	require.ErrorIs(t, err, entity.ErrEmptyPrompt)
	assert.Equal(t, s, next)
	assert.Zero(t, sub)
}

func TestSubmit_WhitespacePromptIsAccepted(t *testing.T) {
	s := New().EditPrompt(" ")
	assert.True(t, s.CanSubmit())

	_, sub, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, " ", sub.Prompt)
}

func TestSubmit_EntersLoading(t *testing.T) {
	s, sub, err := New().EditPrompt("go generics").Submit()
	require.NoError(t, err)

	assert.True(t, s.Loading())
	assert.False(t, s.CanSubmit())
	assert.Equal(t, SubmitLabelLoading, s.SubmitLabel())
	assert.Equal(t, "go generics", sub.Prompt)
	assert.Equal(t, &entity.GenerateBlogRequest{Prompt: "go generics"}, sub.Body())
}

func TestSubmit_RejectedWhileLoading(t *testing.T) {
	s, first, err := New().EditPrompt("first").Submit()
	require.NoError(t, err)

	next, second, err := s.Submit()
	require.ErrorIs(t, err, entity.ErrRequestInFlight)
	assert.Equal(t, s, next)
	assert.Zero(t, second)

	// the original submission still resolves
	next = next.Succeed(first, sampleResult())
	assert.Equal(t, PhaseSucceeded, next.Phase())
}

func TestSubmit_ClearsPreviousResultAndError(t *testing.T) {
	s, sub, _ := New().EditPrompt("p").Submit()
	s = s.Succeed(sub, sampleResult())
	require.NotNil(t, s.Result())

	s, sub, err := s.Submit()
	require.NoError(t, err)
	assert.Nil(t, s.Result())
	assert.Empty(t, s.ErrorMessage())

	s = s.Fail(sub)
	require.NotEmpty(t, s.ErrorMessage())

	s, _, err = s.Submit()
	require.NoError(t, err)
	assert.Empty(t, s.ErrorMessage())
	assert.Nil(t, s.Result())
}

func TestSucceed_DisplaysAllFields(t *testing.T) {
	s, sub, _ := New().EditPrompt("topic").Submit()
	s = s.Succeed(sub, sampleResult())

	assert.False(t, s.Loading())
	assert.True(t, s.CanSubmit())
	assert.Empty(t, s.ErrorMessage())

	res := s.Result()
	require.NotNil(t, res)
	assert.Equal(t, "A", res.GeneratedText)
	assert.Equal(t, "B", res.Summary)
	assert.Equal(t, "C", res.Sentiment)
	assert.Equal(t, "D", res.Category)
	assert.Equal(t, "http://x/y.png", res.ImageURL)
}

func TestFail_FixedMessageNoResult(t *testing.T) {
	s, sub, _ := New().EditPrompt("topic").Submit()
	s = s.Resolve(sub, nil, errors.New("dial tcp: connection refused"))

	assert.Equal(t, PhaseFailed, s.Phase())
	assert.Equal(t, entity.RequestFailureMessage, s.ErrorMessage())
	assert.Nil(t, s.Result())
	assert.False(t, s.Loading())
	assert.True(t, s.CanSubmit())
}

func TestResolve_StaleSubmissionIgnored(t *testing.T) {
	s, sub, _ := New().EditPrompt("topic").Submit()
	s = s.Fail(sub)

	s, current, _ := s.Submit()
	res := sampleResult()

	stale := s.Resolve(sub, &res, nil)
	assert.True(t, stale.Loading())

	done := s.Resolve(current, &res, nil)
	assert.Equal(t, PhaseSucceeded, done.Phase())

	// a second resolution for the same submission is a no-op
	again := done.Fail(current)
	assert.Equal(t, PhaseSucceeded, again.Phase())
}

func TestEditPrompt_DuringFlightDoesNotChangeSubmission(t *testing.T) {
	s, sub, _ := New().EditPrompt("original").Submit()
	s = s.EditPrompt("edited while loading")

	assert.Equal(t, "original", sub.Prompt)
	assert.Equal(t, "edited while loading", s.Prompt())
	assert.True(t, s.Loading())

	s = s.Succeed(sub, sampleResult())
	assert.Equal(t, "edited while loading", s.Prompt())
	assert.Equal(t, "original", sub.Body().Prompt)
}

func TestToggleCredits_RoundTrip(t *testing.T) {
	for _, initial := range []bool{false, true} {
		s := New()
		if initial {
			s = s.ToggleCredits()
		}
		assert.Equal(t, initial, s.ToggleCredits().ToggleCredits().CreditsVisible())
	}
}

func TestToggleCredits_IndependentOfRequest(t *testing.T) {
	s, sub, _ := New().EditPrompt("topic").Submit()
	s = s.ToggleCredits()

	assert.True(t, s.CreditsVisible())
	assert.True(t, s.Loading())

	s = s.Succeed(sub, sampleResult())
	assert.True(t, s.CreditsVisible())

	s = s.CloseCredits()
	assert.False(t, s.CreditsVisible())
	assert.False(t, s.CloseCredits().CreditsVisible())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "succeeded", PhaseSucceeded.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
