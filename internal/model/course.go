package model

type CourseDifficulty string

const (
	Beginner     CourseDifficulty = "beginner"
	Intermediate CourseDifficulty = "intermediate"
	Advanced     CourseDifficulty = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title          string           `gorm:"size:200;not null;index" json:"title"`
	Description    string           `gorm:"type:text;not null" json:"description"`
	InstructorName string           `gorm:"size:100;not null" json:"instructor_name"`
	DurationHours  int              `gorm:"default:0" json:"duration_hours"`
	LessonCount    int              `gorm:"default:0" json:"lesson_count"`
	Difficulty     CourseDifficulty `gorm:"size:20;default:'intermediate'" json:"difficulty"`
	Category       string           `gorm:"size:50;default:'mathematics'" json:"category"`
	ImageURL       string           `gorm:"size:500" json:"image_url"`
	IsPublished    bool             `gorm:"index" json:"is_published"`
	Exams          []Exam           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
