package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"codeberg.org/visualmath/server/internal/animation"
	"codeberg.org/visualmath/server/internal/manim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Runner for testing
type mockRunner struct {
	runFunc func(ctx context.Context, prompt string, onCode func(string)) (*animation.Result, error)
}

func (m *mockRunner) Run(ctx context.Context, prompt string, onCode func(string)) (*animation.Result, error) {
	return m.runFunc(ctx, prompt, onCode)
}

// collects every published snapshot
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) observe(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, s)
}

func (r *recorder) phases() []Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	var phases []Phase
	for _, s := range r.states {
		if len(phases) == 0 || phases[len(phases)-1] != s.Phase {
			phases = append(phases, s.Phase)
		}
	}

	return phases
}

func (r *recorder) sawPhase(p Phase) bool {
	for _, seen := range r.phases() {
		if seen == p {
			return true
		}
	}

	return false
}

func newTestController(runner Runner, rec *recorder, opts ...Option) *Controller {
	base := []Option{
		WithTickInterval(time.Millisecond),
		WithPhasePause(0),
		WithObserver(rec.observe),
	}

	return NewController(runner, append(base, opts...)...)
}

func TestSubmit_Success(t *testing.T) {
	runner := &mockRunner{runFunc: func(_ context.Context, prompt string, onCode func(string)) (*animation.Result, error) {
		assert.Equal(t, "red rotating 3d cube", prompt)
		onCode("print(1)")
		return &animation.Result{VideoURL: "https://x/y.mp4", Code: "print(1)"}, nil
	}}

	rec := &recorder{}
	ctrl := newTestController(runner, rec)

	final, err := ctrl.Submit(context.Background(), "  red rotating 3d cube  ")

	require.NoError(t, err)
	assert.Equal(t, PhaseDone, final.Phase)
	assert.Equal(t, "https://x/y.mp4", final.VideoURL)
	assert.Equal(t, "print(1)", final.Code)
	assert.Equal(t, "red rotating 3d cube", final.Prompt)
	assert.Empty(t, final.Error)
	assert.Equal(t, 100, final.StepProgress(StepCode))
	assert.Equal(t, 100, final.StepProgress(StepRender))
	assert.True(t, final.StepComplete(StepCode))
	assert.True(t, final.StepComplete(StepRender))
	assert.Equal(t, final, ctrl.State())

	assert.Equal(t, []Phase{PhaseGeneratingCode, PhaseRendering, PhaseDone}, rec.phases())
}

func TestSubmit_DisablesActionUntilFinished(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	runner := &mockRunner{runFunc: func(_ context.Context, _ string, onCode func(string)) (*animation.Result, error) {
		close(started)
		<-release
		onCode("print(1)")
		return &animation.Result{VideoURL: "https://x/y.mp4"}, nil
	}}

	ctrl := newTestController(runner, &recorder{})

	assert.True(t, ctrl.State().CanSubmit("sine wave"))
	assert.False(t, ctrl.State().CanSubmit("   "))

	done := make(chan State, 1)
	go func() {
		final, _ := ctrl.Submit(context.Background(), "sine wave")
		done <- final
	}()

	<-started

	assert.True(t, ctrl.State().Busy())
	assert.False(t, ctrl.State().CanSubmit("sine wave"))

	_, err := ctrl.Submit(context.Background(), "another prompt")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	final := <-done

	assert.Equal(t, PhaseDone, final.Phase)
	assert.True(t, ctrl.State().CanSubmit("sine wave"))
}

func TestSubmit_GenerationFailure(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, string, func(string)) (*animation.Result, error) {
		return nil, animation.NewGenerationError("", nil)
	}}

	rec := &recorder{}
	ctrl := newTestController(runner, rec)

	final, err := ctrl.Submit(context.Background(), "sine wave")

	require.Error(t, err)
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, animation.KindGeneration, final.Kind)
	assert.Equal(t, animation.MsgGenerationFailed, final.Error)
	assert.Equal(t, 0, final.ActiveStep())
	assert.False(t, rec.sawPhase(PhaseRendering))
	assert.True(t, final.CanSubmit("sine wave"))
}

func TestSubmit_MissingVideoURL(t *testing.T) {
	runner := &mockRunner{runFunc: func(_ context.Context, _ string, onCode func(string)) (*animation.Result, error) {
		onCode("print(1)")
		return &animation.Result{Code: "print(1)"}, nil
	}}

	ctrl := newTestController(runner, &recorder{})

	final, err := ctrl.Submit(context.Background(), "sine wave")

	require.Error(t, err)
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, animation.KindRender, final.Kind)
	assert.Equal(t, animation.MsgNoVideoURL, final.Error)
	assert.Empty(t, final.VideoURL)
}

func TestSubmit_EmptyPrompt(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, string, func(string)) (*animation.Result, error) {
		t.Fatal("runner must not be called for an empty prompt")
		return nil, nil
	}}

	ctrl := newTestController(runner, &recorder{})

	state, err := ctrl.Submit(context.Background(), " \n ")

	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Equal(t, PhaseIdle, state.Phase)
}

func TestProgress_HoldsAtCeiling(t *testing.T) {
	release := make(chan struct{})

	runner := &mockRunner{runFunc: func(_ context.Context, _ string, onCode func(string)) (*animation.Result, error) {
		<-release
		onCode("print(1)")
		return &animation.Result{VideoURL: "https://x/y.mp4"}, nil
	}}

	ctrl := newTestController(runner, &recorder{}, WithCeiling(10))

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.Submit(context.Background(), "sine wave") //nolint:errcheck
	}()

	require.Eventually(t, func() bool {
		return ctrl.State().Progress == 10
	}, time.Second, time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	state := ctrl.State()
	assert.Equal(t, PhaseGeneratingCode, state.Phase)
	assert.Equal(t, 10, state.Progress)
	assert.Equal(t, 10, state.StepProgress(StepCode))
	assert.Equal(t, 0, state.StepProgress(StepRender))

	close(release)
	<-done

	assert.Equal(t, 100, ctrl.State().Progress)
}

func TestObserver_SnapshotsAreOrdered(t *testing.T) {
	runner := &mockRunner{runFunc: func(_ context.Context, _ string, onCode func(string)) (*animation.Result, error) {
		time.Sleep(10 * time.Millisecond)
		onCode("print(1)")
		time.Sleep(10 * time.Millisecond)
		return &animation.Result{VideoURL: "https://x/y.mp4"}, nil
	}}

	rec := &recorder{}
	ctrl := newTestController(runner, rec)

	_, err := ctrl.Submit(context.Background(), "sine wave")
	require.NoError(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	for i := 1; i < len(rec.states); i++ {
		assert.Greater(t, rec.states[i].seq, rec.states[i-1].seq)
		assert.GreaterOrEqual(t, rec.states[i].Phase, rec.states[i-1].Phase, "phase went backwards")
	}

	for _, s := range rec.states {
		assert.False(t, s.Phase == PhaseDone && s.Error != "", "done with an error")
	}
}

func TestDismiss(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, string, func(string)) (*animation.Result, error) {
		return nil, animation.NewUnexpectedError("", nil)
	}}

	ctrl := newTestController(runner, &recorder{})

	ctrl.Dismiss()
	assert.Equal(t, PhaseIdle, ctrl.State().Phase)

	_, err := ctrl.Submit(context.Background(), "sine wave")
	require.Error(t, err)
	assert.Equal(t, animation.MsgUnexpected, ctrl.State().Error)

	ctrl.Dismiss()

	state := ctrl.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.Error)
}

func TestSubmit_ResetsPreviousResult(t *testing.T) {
	calls := 0
	runner := &mockRunner{runFunc: func(_ context.Context, _ string, onCode func(string)) (*animation.Result, error) {
		calls++
		if calls == 1 {
			onCode("print(1)")
			return &animation.Result{VideoURL: "https://x/y.mp4"}, nil
		}

		return nil, animation.NewGenerationError("", nil)
	}}

	ctrl := newTestController(runner, &recorder{})

	_, err := ctrl.Submit(context.Background(), "first")
	require.NoError(t, err)

	final, err := ctrl.Submit(context.Background(), "second")
	require.Error(t, err)
	assert.Empty(t, final.VideoURL)
	assert.Empty(t, final.Code)
	assert.Equal(t, "second", final.Prompt)
}

// generation answers 500: the render call is never made and the UI never reaches rendering
func TestController_WithServiceGenerationFailure(t *testing.T) {
	var renderCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /code/generation", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	})
	mux.HandleFunc("POST /video/rendering", func(w http.ResponseWriter, _ *http.Request) {
		renderCalls.Add(1)
		w.Write([]byte(`{"video_url":"https://x/y.mp4"}`)) //nolint:errcheck
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := animation.NewService(manim.NewClient(srv.URL, srv.Client()), "gpt-4o")
	rec := &recorder{}
	ctrl := newTestController(svc, rec)

	final, err := ctrl.Submit(context.Background(), "red rotating 3d cube")

	require.Error(t, err)
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, animation.MsgGenerationFailed, final.Error)
	assert.EqualValues(t, 0, renderCalls.Load())
	assert.False(t, rec.sawPhase(PhaseRendering))
}

func TestController_WithServiceEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /code/generation", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code":"` + "```python\\nprint(1)\\n```" + `"}`)) //nolint:errcheck
	})
	mux.HandleFunc("POST /video/rendering", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"video_url":"https://x/y.mp4"}`)) //nolint:errcheck
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := animation.NewService(manim.NewClient(srv.URL, srv.Client()), "gpt-4o")
	rec := &recorder{}
	ctrl := newTestController(svc, rec)

	final, err := ctrl.Submit(context.Background(), "red rotating 3d cube")

	require.NoError(t, err)
	assert.Equal(t, PhaseDone, final.Phase)
	assert.Equal(t, "print(1)", final.Code)
	assert.Equal(t, "https://x/y.mp4", final.VideoURL)
	assert.Equal(t, []Phase{PhaseGeneratingCode, PhaseRendering, PhaseDone}, rec.phases())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "generating_code", PhaseGeneratingCode.String())
	assert.Equal(t, "rendering", PhaseRendering.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
