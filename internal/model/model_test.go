package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExamIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name string
		exam Exam
		want bool
	}{
		{name: "published future", exam: Exam{IsPublished: true, ScheduledDate: &later}, want: true},
		{name: "published past", exam: Exam{IsPublished: true, ScheduledDate: &earlier}},
		{name: "published now", exam: Exam{IsPublished: true, ScheduledDate: &now}},
		{name: "unpublished future", exam: Exam{ScheduledDate: &later}},
		{name: "unscheduled", exam: Exam{IsPublished: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.exam.IsUpcoming(now))
		})
	}
}

func TestChatMessageView(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	msg := ChatMessage{ID: 7, Message: "hi", CreatedAt: at, User: &User{Name: "Rahim", Role: Teacher}}

	assert.Equal(t, ChatMessageView{ID: 7, User: "Rahim", Role: "teacher", Message: "hi", Timestamp: "09:05"}, msg.View())

	orphan := ChatMessage{ID: 8, Message: "?"}
	v := orphan.View()
	assert.Equal(t, "Unknown", v.User)
	assert.Equal(t, "student", v.Role)
	assert.Empty(t, v.Timestamp)
}

func TestUserRoleIsStaff(t *testing.T) {
	assert.False(t, Student.IsStaff())
	assert.True(t, Teacher.IsStaff())
	assert.True(t, Admin.IsStaff())
}

func TestLiveClassView(t *testing.T) {
	c := LiveClass{Title: "Calculus", ChannelName: "olympus_math_101", IsLive: true}
	assert.Nil(t, c.View().Instructor)

	c.Instructor = &User{Name: "Karim"}
	v := c.View()
	if assert.NotNil(t, v.Instructor) {
		assert.Equal(t, "Karim", *v.Instructor)
	}
	assert.True(t, v.IsLive)
}
