package service

import (
	"olympus_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStatsWithoutSubmissions(t *testing.T) {
	e := newTestEnv(t)
	student := e.user(t, "s@olympus.com", model.Student)

	stats, err := e.stats.UserStats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, UserStats{}, *stats)
}

func TestUserStats(t *testing.T) {
	e := newTestEnv(t)
	student := e.user(t, "s@olympus.com", model.Student)
	_, err := e.content.CreateCourse(CourseInput{Title: "Algebra", Description: "d", InstructorName: "K"})
	require.NoError(t, err)
	exam, err := e.content.CreateExam(ExamInput{Title: "Mock", IsPublished: true})
	require.NoError(t, err)

	for _, score := range []int{70, 85} {
		_, err := e.exam.SubmitExam(student.Identity(), exam.ID, SubmitInput{Score: score})
		require.NoError(t, err)
	}

	stats, err := e.stats.UserStats(student.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.EnrolledCourses)
	assert.EqualValues(t, 2, stats.CompletedExams)
	assert.Equal(t, 3.0, stats.LearningHours)
	assert.Equal(t, 77, stats.AvgScore)
}

func TestTeacherPanel(t *testing.T) {
	e := newTestEnv(t)
	e.user(t, "s1@olympus.com", model.Student)
	s2 := e.user(t, "s2@olympus.com", model.Student)
	e.user(t, "t@olympus.com", model.Teacher)

	_, err := e.chat.SendMessage(s2.ID, "hello", nil)
	require.NoError(t, err)

	panel, err := e.stats.TeacherPanel()
	require.NoError(t, err)
	assert.EqualValues(t, 2, panel.Stats.TotalStudents)
	assert.Zero(t, panel.Stats.ActiveClasses)
	require.Len(t, panel.Students, 2)
	require.Len(t, panel.Messages, 1)
	assert.Equal(t, s2.Name, panel.Messages[0].User)
}

func TestStudentDashboard(t *testing.T) {
	e := newTestEnv(t)
	student := e.user(t, "s@olympus.com", model.Student)

	start := fixedNow.Add(time.Hour)
	_, err := e.class.CreateLiveClass(model.Identity{ID: student.ID}, LiveClassInput{Title: "Soon", ScheduledStart: &start})
	require.NoError(t, err)

	dash, err := e.stats.StudentDashboard(student.Identity())
	require.NoError(t, err)
	assert.NotNil(t, dash.Stats)
	require.Len(t, dash.UpcomingClasses, 1)
	assert.Equal(t, "Soon", dash.UpcomingClasses[0].Title)
	assert.Empty(t, dash.RecentSubmissions)
}
