package repository

import (
	"olympus_backend/internal/model"
	"olympus_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{Email: email, Name: email, PasswordHash: "x", Role: role}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}

func TestQuestionRepositoryFilterAndOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewQuestionRepository(db)

	seed := []model.Question{
		{Title: "A", ProblemStatement: "a", Topic: "algebra", Difficulty: "easy", Source: "BdMO"},
		{Title: "B", ProblemStatement: "b", Topic: "geometry", Difficulty: "hard", Source: "BdMO"},
		{Title: "C", ProblemStatement: "c", Topic: "algebra", Difficulty: "hard", Source: "IMO"},
	}
	for i := range seed {
		seed[i].CreatedAt = baseTime.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(&seed[i]))
	}

	all, total, err := repo.List(QuestionFilter{}, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Title)
	assert.Equal(t, "A", all[2].Title)

	algebra, total, err := repo.List(QuestionFilter{Topic: "algebra"}, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, q := range algebra {
		assert.Equal(t, "algebra", q.Topic)
	}

	hardAlgebra, _, err := repo.List(QuestionFilter{Topic: "algebra", Difficulty: "hard"}, 1, 0)
	require.NoError(t, err)
	require.Len(t, hardAlgebra, 1)
	assert.Equal(t, "C", hardAlgebra[0].Title)

	paged, total, err := repo.List(QuestionFilter{}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, paged, 1)
	assert.Equal(t, "A", paged[0].Title)

	topics, err := repo.DistinctTopics()
	require.NoError(t, err)
	assert.Equal(t, []string{"algebra", "geometry"}, topics)

	exists, err := repo.ExistsByTitleAndSource("C", "IMO")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByTitleAndSource("C", "BdMO")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCourseRepositoryDeleteAllDetachesExams(t *testing.T) {
	db := testutil.OpenDB(t)
	courses := NewCourseRepository(db)
	exams := NewExamRepository(db)

	course := &model.Course{Title: "Number Theory", Description: "d", InstructorName: "Karim", IsPublished: true}
	require.NoError(t, courses.Create(course))
	draft := &model.Course{Title: "Draft", Description: "d", InstructorName: "Karim"}
	require.NoError(t, courses.Create(draft))

	exam := &model.Exam{Title: "Mock", CourseID: &course.ID, IsPublished: true}
	require.NoError(t, exams.Create(exam))

	published, err := courses.List(true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Number Theory", published[0].Title)

	n, err := courses.CountPublished()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, courses.DeleteAll())

	n, err = courses.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	kept, err := exams.FindByID(exam.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.CourseID)
}

func TestExamRepositoryFindUpcoming(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewExamRepository(db)

	later := baseTime.Add(48 * time.Hour)
	soon := baseTime.Add(24 * time.Hour)
	past := baseTime.Add(-24 * time.Hour)

	for _, e := range []*model.Exam{
		{Title: "later", ScheduledDate: &later, IsPublished: true},
		{Title: "soon", ScheduledDate: &soon, IsPublished: true},
		{Title: "past", ScheduledDate: &past, IsPublished: true},
		{Title: "draft", ScheduledDate: &soon},
		{Title: "unscheduled", IsPublished: true},
	} {
		require.NoError(t, repo.Create(e))
	}

	upcoming, err := repo.FindUpcoming(baseTime)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].Title)
	assert.Equal(t, "later", upcoming[1].Title)

	// the same instant expressed in another zone
	upcoming, err = repo.FindUpcoming(baseTime.Add(36 * time.Hour).In(time.FixedZone("BDT", 6*3600)))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "later", upcoming[0].Title)

	none, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSubmissionRepositoryTotals(t *testing.T) {
	db := testutil.OpenDB(t)
	user := createUser(t, db, "s@olympus.com", model.Student)
	exam := &model.Exam{Title: "Mock", IsPublished: true}
	require.NoError(t, NewExamRepository(db).Create(exam))

	repo := NewSubmissionRepository(db)

	totals, err := repo.ScoreTotalsByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, ScoreTotals{}, totals)

	for i, score := range []int{70, 85} {
		require.NoError(t, repo.Create(&model.Submission{
			UserID:      user.ID,
			ExamID:      exam.ID,
			Score:       score,
			TotalScore:  100,
			SubmittedAt: baseTime.Add(time.Duration(i) * time.Hour),
		}))
	}

	totals, err = repo.ScoreTotalsByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, ScoreTotals{Count: 2, Sum: 155}, totals)

	ids, err := repo.ExamIDsByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{exam.ID}, ids)

	recent, err := repo.FindRecentByUser(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 85, recent[0].Score)
}

func TestLiveClassRepositoryFindLive(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewLiveClassRepository(db)

	live, err := repo.FindLive()
	require.NoError(t, err)
	assert.Nil(t, live)

	next, err := repo.FindNextScheduled(baseTime)
	require.NoError(t, err)
	assert.Nil(t, next)

	teacher := createUser(t, db, "t@olympus.com", model.Teacher)
	start := baseTime.Add(time.Hour)
	a := &model.LiveClass{Title: "A", ChannelName: "olympus_a", IsLive: true, InstructorID: &teacher.ID}
	b := &model.LiveClass{Title: "B", ChannelName: "olympus_b", IsLive: true}
	c := &model.LiveClass{Title: "C", ChannelName: "olympus_c", ScheduledStart: &start}
	for _, lc := range []*model.LiveClass{a, b, c} {
		require.NoError(t, repo.Create(lc))
	}

	live, err = repo.FindLive()
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, a.ID, live.ID)
	require.NotNil(t, live.Instructor)
	assert.Equal(t, teacher.Name, live.Instructor.Name)

	next, err = repo.FindNextScheduled(baseTime)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "C", next.Title)

	n, err := repo.CountLive()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	exists, err := repo.ExistsByChannel("olympus_b")
	require.NoError(t, err)
	assert.True(t, exists)

	// saving a preloaded class must not touch the instructor row
	live.IsLive = false
	require.NoError(t, repo.Save(live))
	live, err = repo.FindLive()
	require.NoError(t, err)
	assert.Equal(t, b.ID, live.ID)
}

func TestChatRepositoryOrdering(t *testing.T) {
	db := testutil.OpenDB(t)
	user := createUser(t, db, "s@olympus.com", model.Student)
	class := &model.LiveClass{Title: "A", ChannelName: "olympus_a"}
	require.NoError(t, NewLiveClassRepository(db).Create(class))

	repo := NewChatRepository(db)
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&model.ChatMessage{
			UserID:      user.ID,
			LiveClassID: &class.ID,
			Message:     text,
			CreatedAt:   baseTime.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Create(&model.ChatMessage{UserID: user.ID, Message: "unscoped", CreatedAt: baseTime.Add(time.Minute)}))

	msgs, err := repo.FindByClass(class.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Message)
	assert.Equal(t, "third", msgs[2].Message)
	require.NotNil(t, msgs[0].User)
	assert.Equal(t, user.Name, msgs[0].User.Name)

	recent, err := repo.FindRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "unscoped", recent[0].Message)
	assert.Equal(t, "third", recent[1].Message)
}

func TestDashboardRepositoryPlatformCounts(t *testing.T) {
	db := testutil.OpenDB(t)
	createUser(t, db, "s1@olympus.com", model.Student)
	createUser(t, db, "s2@olympus.com", model.Student)
	createUser(t, db, "t@olympus.com", model.Teacher)
	require.NoError(t, NewCourseRepository(db).Create(&model.Course{Title: "C", Description: "d", InstructorName: "K"}))
	require.NoError(t, NewLiveClassRepository(db).Create(&model.LiveClass{Title: "L", ChannelName: "olympus_l", IsLive: true}))

	counts, err := NewDashboardRepository(db).PlatformCounts()
	require.NoError(t, err)
	assert.Equal(t, PlatformCounts{TotalStudents: 2, TotalCourses: 1, TotalQuestions: 0, ActiveClasses: 1}, counts)
}

func TestUserRepositoryRole(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewUserRepository(db)
	u := createUser(t, db, "t@olympus.com", model.Teacher)

	role, err := repo.FindRole(u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Teacher, role)

	_, err = repo.FindRole(u.ID + 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
