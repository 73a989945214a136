package model

// Question is an entry of the olympiad problem catalog.
// (Title, Source) is the dedup key used when importing.
// swagger:model Question
type Question struct {
	BaseModel
	Title            string `gorm:"size:200;not null;index:idx_question_title_source" json:"title"`
	ProblemStatement string `gorm:"type:text;not null" json:"problem_statement"`
	Solution         string `gorm:"type:text" json:"solution"`
	SolutionBangla   string `gorm:"type:text" json:"solution_bangla"`
	Difficulty       string `gorm:"size:20;index;default:'medium'" json:"difficulty"`
	Topic            string `gorm:"size:100;index" json:"topic"`
	Source           string `gorm:"size:100;index:idx_question_title_source" json:"source"`
	Year             *int   `json:"year,omitempty"`
	ProblemNumber    string `gorm:"size:20" json:"problem_number"`
}

func (Question) TableName() string {
	return "questions"
}
