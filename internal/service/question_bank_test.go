package service

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSkipsKnownRecords(t *testing.T) {
	e := newTestEnv(t)
	samples := SampleQuestions()

	saved, err := e.bank.Import(samples)
	require.NoError(t, err)
	assert.Equal(t, len(samples), saved)

	saved, err = e.bank.Import(samples)
	require.NoError(t, err)
	assert.Zero(t, saved)

	n, err := e.qs.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(samples), n)
}

func TestImportFillsMissingTitle(t *testing.T) {
	e := newTestEnv(t)

	saved, err := e.bank.Import([]QuestionInput{{ProblemStatement: "Show that 2 is prime.", Source: "IMO"}})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	exists, err := e.qs.ExistsByTitleAndSource("IMO Problem", "IMO")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImportIsAllOrNothing(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.bank.Import([]QuestionInput{
		{Title: "ok", ProblemStatement: "fine"},
		{Title: "broken"},
	})
	assert.ErrorIs(t, err, util.ErrValidation)

	n, err := e.qs.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedIsIdempotent(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.bank.Seed())
	require.NoError(t, e.bank.Seed())

	admin, err := e.users.FindByEmail("admin@olympus.com")
	require.NoError(t, err)
	assert.Equal(t, model.Admin, admin.Role)
	assert.True(t, VerifyPassword("admin123", admin.PasswordHash))

	_, err = e.auth.Login("student@olympus.com", "student123")
	require.NoError(t, err)

	courses, err := e.courses.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleCourses()), courses)

	questions, err := e.qs.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(SampleQuestions()), questions)

	classes, err := e.classes.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, classes)

	live, err := e.class.CurrentOrNext()
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, "olympus_calculus_101", live.ChannelName)
	require.NotNil(t, live.Instructor)
	assert.Equal(t, admin.ID, live.Instructor.ID)
}
