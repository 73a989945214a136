package service

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentOrNextLiveClass(t *testing.T) {
	e := newTestEnv(t)
	teacher := e.user(t, "t@olympus.com", model.Teacher)

	none, err := e.class.CurrentOrNext()
	require.NoError(t, err)
	assert.Nil(t, none)

	a, err := e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "A"})
	require.NoError(t, err)
	_, err = e.class.StartLiveClass(a.ID)
	require.NoError(t, err)

	start := fixedNow.Add(24 * time.Hour)
	b, err := e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "B", ScheduledStart: &start})
	require.NoError(t, err)

	current, err := e.class.CurrentOrNext()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, a.ID, current.ID)

	ended, err := e.class.EndLiveClass(a.ID, "https://cdn.example/rec.mp4")
	require.NoError(t, err)
	assert.False(t, ended.IsLive)
	assert.NotNil(t, ended.ActualEnd)
	assert.Equal(t, "https://cdn.example/rec.mp4", ended.RecordingURL)

	current, err = e.class.CurrentOrNext()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, b.ID, current.ID)
}

func TestClassroomView(t *testing.T) {
	e := newTestEnv(t)
	teacher := e.user(t, "t@olympus.com", model.Teacher)

	view, err := e.class.Classroom()
	require.NoError(t, err)
	assert.Nil(t, view.LiveClass)
	assert.Equal(t, "agora-app", view.AppID)

	class, err := e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "Geometry"})
	require.NoError(t, err)
	_, err = e.class.StartLiveClass(class.ID)
	require.NoError(t, err)

	view, err = e.class.Classroom()
	require.NoError(t, err)
	require.NotNil(t, view.LiveClass)
	require.NotNil(t, view.LiveClass.Instructor)
	assert.Equal(t, teacher.Name, *view.LiveClass.Instructor)
}

func TestCreateLiveClass(t *testing.T) {
	e := newTestEnv(t)
	teacher := e.user(t, "t@olympus.com", model.Teacher)

	class, err := e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: " Number Theory "})
	require.NoError(t, err)
	assert.Equal(t, "Number Theory", class.Title)
	assert.True(t, strings.HasPrefix(class.ChannelName, "olympus_"))
	assert.False(t, class.IsLive)

	_, err = e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "Again", ChannelName: class.ChannelName})
	assert.ErrorIs(t, err, util.ErrConflict)

	_, err = e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: ""})
	assert.ErrorIs(t, err, util.ErrValidation)

	start := fixedNow.Add(2 * time.Hour)
	end := fixedNow.Add(time.Hour)
	_, err = e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "Backwards", ScheduledStart: &start, ScheduledEnd: &end})
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = e.class.StartLiveClass(9999)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestNextClassWithOffsetTimes(t *testing.T) {
	e := newTestEnv(t)
	teacher := e.user(t, "t@olympus.com", model.Teacher)
	student := e.user(t, "s@olympus.com", model.Student)
	dhaka := time.FixedZone("BDT", 6*3600)

	started := fixedNow.Add(-time.Hour).In(dhaka)
	_, err := e.class.CreateLiveClass(teacher.Identity(), LiveClassInput{Title: "started", ScheduledStart: &started})
	require.NoError(t, err)

	next, err := e.class.CurrentOrNext()
	require.NoError(t, err)
	assert.Nil(t, next)

	later := fixedNow.Add(2 * time.Hour).In(time.FixedZone("EST", -5*3600))
	sooner := fixedNow.Add(time.Hour).In(dhaka)
	for _, in := range []LiveClassInput{
		{Title: "later", ScheduledStart: &later},
		{Title: "sooner", ScheduledStart: &sooner},
	} {
		_, err := e.class.CreateLiveClass(teacher.Identity(), in)
		require.NoError(t, err)
	}

	next, err = e.class.CurrentOrNext()
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "sooner", next.Title)

	dash, err := e.stats.StudentDashboard(student.Identity())
	require.NoError(t, err)
	require.Len(t, dash.UpcomingClasses, 2)
	assert.Equal(t, "sooner", dash.UpcomingClasses[0].Title)
	assert.Equal(t, "later", dash.UpcomingClasses[1].Title)
}
