package service

import (
	"context"
	"errors"
	"olympus_backend/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	calls   int
	prompts []string
	reply   string
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestAskRejectsEmptyQuestionBeforeCalling(t *testing.T) {
	e := newTestEnv(t)
	fake := &fakeCompleter{reply: "unused"}
	tutor := NewTutorService(fake, e.qs, time.Second)

	for _, q := range []string{"", "   "} {
		_, err := tutor.Ask(context.Background(), q, nil)
		assert.ErrorIs(t, err, util.ErrValidation)
	}
	assert.Zero(t, fake.calls)
}

func TestAskBuildsPrompt(t *testing.T) {
	e := newTestEnv(t)
	fake := &fakeCompleter{reply: "চলো দেখি!"}
	tutor := NewTutorService(fake, e.qs, time.Second)
	tutor.Now = clock

	history := []Turn{
		{Role: "user", Content: "What is a prime?"},
		{Role: "assistant", Content: "A number with exactly two divisors."},
	}
	answer, err := tutor.Ask(context.Background(), " Is 1 prime? ", history)
	require.NoError(t, err)
	assert.Equal(t, "চলো দেখি!", answer.Response)
	assert.Equal(t, "2026-03-01T12:00:00Z", answer.Timestamp)

	require.Equal(t, 1, fake.calls)
	prompt := fake.prompts[0]
	assert.True(t, strings.HasPrefix(prompt, tutorPreamble))
	assert.Contains(t, prompt, "Previous conversation:\nuser: What is a prime?\nassistant: A number with exactly two divisors.\n")
	assert.True(t, strings.HasSuffix(prompt, "Student's question: Is 1 prime?\n\nAnswer:"))
	assert.Less(t, strings.Index(prompt, "Previous conversation:"), strings.Index(prompt, "Student's question:"))
}

func TestBuildPromptWithoutHistory(t *testing.T) {
	prompt := BuildPrompt("Find x.", nil)
	assert.NotContains(t, prompt, "Previous conversation:")
	assert.Equal(t, tutorPreamble+"\n\nStudent's question: Find x.\n\nAnswer:", prompt)
}

func TestAskUnavailable(t *testing.T) {
	e := newTestEnv(t)

	unconfigured := NewTutorService(nil, e.qs, time.Second)
	_, err := unconfigured.Ask(context.Background(), "Is 1 prime?", nil)
	assert.ErrorIs(t, err, util.ErrServiceUnavailable)

	failing := NewTutorService(&fakeCompleter{err: errors.New("quota exceeded")}, e.qs, time.Second)
	_, err = failing.Ask(context.Background(), "Is 1 prime?", nil)
	assert.ErrorIs(t, err, util.ErrServiceUnavailable)
	assert.Equal(t, "AI tutor failed to respond", util.MessageOf(err))
}

type blockingCompleter struct{}

func (blockingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestAskTimesOut(t *testing.T) {
	e := newTestEnv(t)
	tutor := NewTutorService(blockingCompleter{}, e.qs, 10*time.Millisecond)

	_, err := tutor.Ask(context.Background(), "Is 1 prime?", nil)
	assert.ErrorIs(t, err, util.ErrServiceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExplainSolution(t *testing.T) {
	e := newTestEnv(t)
	fake := &fakeCompleter{reply: "ব্যাখ্যা"}
	tutor := NewTutorService(fake, e.qs, time.Second)

	q, err := e.content.CreateQuestion(SampleQuestions()[0])
	require.NoError(t, err)

	answer, err := tutor.ExplainSolution(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "ব্যাখ্যা", answer.Response)
	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], q.ProblemStatement)
	assert.Contains(t, fake.prompts[0], q.Solution)

	_, err = tutor.ExplainSolution(context.Background(), q.ID+100)
	assert.ErrorIs(t, err, util.ErrNotFound)

	bare, err := e.content.CreateQuestion(QuestionInput{Title: "No solution", ProblemStatement: "?"})
	require.NoError(t, err)
	_, err = tutor.ExplainSolution(context.Background(), bare.ID)
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.Equal(t, 1, fake.calls)
}
