package blog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/pkg/logger"
	"github.com/futig/blog-generator/internal/view"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase drives page sessions: it applies UI events to the session's view
// state and runs the generation call for a submission in the background.
type Usecase struct {
	sessions  SessionRepository
	generator Generator
	exporter  Exporter
	credits   []entity.Contributor
	logger    *zap.Logger

	inflight sync.WaitGroup
}

func NewUsecase(
	sessions SessionRepository,
	generator Generator,
	exporter Exporter,
	credits []entity.Contributor,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		sessions:  sessions,
		generator: generator,
		exporter:  exporter,
		credits:   credits,
		logger:    logger,
	}
}

// NewSession creates an empty screen and returns its id.
func (uc *Usecase) NewSession(ctx context.Context) (string, view.State, error) {
	session := view.NewSession(uuid.NewString())
	if err := uc.sessions.Create(ctx, session); err != nil {
		return "", view.State{}, fmt.Errorf("create session: %w", err)
	}

	ctxzap.Debug(ctx, "page session created", zap.String("session_id", session.ID))
	return session.ID, session.Snapshot(), nil
}

// OpenSession returns the session state for id, or a fresh session when id
// is unknown or expired. The returned id is the one to use from now on.
func (uc *Usecase) OpenSession(ctx context.Context, id string) (string, view.State, error) {
	if id != "" {
		session, err := uc.sessions.Get(ctx, id)
		if err == nil {
			return session.ID, session.Snapshot(), nil
		}
		if !errors.Is(err, entity.ErrSessionNotFound) {
			return "", view.State{}, err
		}
	}
	return uc.NewSession(ctx)
}

func (uc *Usecase) Snapshot(ctx context.Context, id string) (view.State, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return view.State{}, err
	}
	return session.Snapshot(), nil
}

func (uc *Usecase) EditPrompt(ctx context.Context, id, prompt string) (view.State, error) {
	return uc.update(ctx, id, func(s view.State) view.State { return s.EditPrompt(prompt) })
}

func (uc *Usecase) ToggleCredits(ctx context.Context, id string) (view.State, error) {
	return uc.update(ctx, id, view.State.ToggleCredits)
}

func (uc *Usecase) CloseCredits(ctx context.Context, id string) (view.State, error) {
	return uc.update(ctx, id, view.State.CloseCredits)
}

// Reset drops the session. The next access starts from the initial screen.
func (uc *Usecase) Reset(ctx context.Context, id string) error {
	return uc.sessions.Delete(ctx, id)
}

func (uc *Usecase) Credits() []entity.Contributor {
	return uc.credits
}

// Notify receives the session state once a submission has resolved.
type Notify func(ctx context.Context, state view.State)

// Submit sets the prompt and submits it. The generation call runs in the
// background and resolves the session when it returns; there is no timeout
// and no way to cancel it.
func (uc *Usecase) Submit(ctx context.Context, id, prompt string) (view.State, error) {
	return uc.SubmitNotify(ctx, id, prompt, nil)
}

// SubmitNotify is Submit for hosts that push the outcome to the user instead
// of waiting for the next read. notify may be nil.
func (uc *Usecase) SubmitNotify(ctx context.Context, id, prompt string, notify Notify) (view.State, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return view.State{}, err
	}

	state, sub, err := session.Submit(prompt)
	if err != nil {
		ctxzap.Debug(ctx, "submit refused", zap.String("session_id", id), zap.Error(err))
		return state, err
	}

	bgCtx := logger.AddFields(logger.Detach(ctx),
		zap.String("session_id", id),
		zap.Uint64("submission", sub.Seq),
		zap.String("action", "Submit-async"),
	)

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		uc.resolve(bgCtx, id, sub, notify)
	}()

	ctxzap.Info(ctx, "blog generation submitted", zap.String("session_id", id), zap.Uint64("submission", sub.Seq))
	return state, nil
}

// Wait blocks until every background generation call has resolved.
func (uc *Usecase) Wait() {
	uc.inflight.Wait()
}

func (uc *Usecase) resolve(ctx context.Context, id string, sub view.Submission, notify Notify) {
	result, err := uc.generator.GenerateBlog(ctx, sub.Body())
	if err != nil {
		ctxzap.Error(ctx, "blog generation failed", zap.Error(err))
	}

	session, getErr := uc.sessions.Get(ctx, id)
	if getErr != nil {
		ctxzap.Warn(ctx, "session gone before generation resolved", zap.Error(getErr))
		return
	}

	state := session.Update(func(s view.State) view.State { return s.Resolve(sub, result, err) })
	ctxzap.Info(ctx, "blog generation resolved", zap.Stringer("phase", state.Phase()))

	if notify != nil && !state.Loading() {
		notify(ctx, state)
	}
}

// Generate runs one generation call synchronously. Failures are reported as
// entity.ErrRequestFailed.
func (uc *Usecase) Generate(ctx context.Context, prompt string) (*entity.BlogResult, error) {
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}

	result, err := uc.generator.GenerateBlog(ctx, &entity.GenerateBlogRequest{Prompt: prompt})
	if err != nil {
		ctxzap.Error(ctx, "blog generation failed", zap.Error(err))
		return nil, entity.ErrRequestFailed
	}
	return result, nil
}

// Export renders the session's current result.
func (uc *Usecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportedDocument, error) {
	state, err := uc.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	result := state.Result()
	if result == nil {
		return nil, entity.ErrNoResult
	}

	return uc.exporter.Export(format, result)
}

func (uc *Usecase) update(ctx context.Context, id string, fn func(view.State) view.State) (view.State, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return view.State{}, err
	}
	return session.Update(fn), nil
}
