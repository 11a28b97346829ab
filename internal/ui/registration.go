package ui

import (
	"context"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"student-registry/internal/dto"
	"student-registry/internal/service"
	"student-registry/internal/validation"
)

// 表单字段标签，同时用于按标签查找控件
const (
	labelStudentID    = "Student ID"
	labelName         = "Name"
	labelGender       = "Gender"
	labelFormerClass  = "Former Class (1-12)"
	labelCurrentClass = "Current Class (1-12)"
	labelPhone        = "Phone Number (10 digits)"
	labelHealthIssues = "Health Issues (no numbers)"
	buttonRegister    = "Register"
)

// registrationView 登记表单
//
// 状态：Empty →（输入）→ Filled →（提交失败）→ Filled →（提交成功）→ Empty
type registrationView struct {
	form *tview.Form

	studentID    *tview.InputField
	name         *tview.InputField
	gender       *tview.DropDown
	formerClass  *tview.InputField
	currentClass *tview.InputField
	phone        *tview.InputField
	healthIssues *tview.TextArea

	svc          service.StudentService
	dialogs      Dialogs
	logger       *zap.Logger
	onRegistered func()
}

func newRegistrationView(svc service.StudentService, dialogs Dialogs, logger *zap.Logger, onRegistered func()) *registrationView {
	v := &registrationView{
		svc:          svc,
		dialogs:      dialogs,
		logger:       logger,
		onRegistered: onRegistered,
	}

	v.form = tview.NewForm().
		AddInputField(labelStudentID, "", 30, nil, nil).
		AddInputField(labelName, "", 30, nil, nil).
		AddDropDown(labelGender, validation.Genders, -1, nil).
		AddInputField(labelFormerClass, "", 4, tview.InputFieldInteger, nil).
		AddInputField(labelCurrentClass, "", 4, tview.InputFieldInteger, nil).
		AddInputField(labelPhone, "", 30, nil, nil).
		AddTextArea(labelHealthIssues, "", 60, 5, 0, nil).
		AddButton(buttonRegister, v.submit)
	v.form.SetBorder(true).SetTitle(" Student Registration ")

	v.studentID = v.form.GetFormItemByLabel(labelStudentID).(*tview.InputField)
	v.name = v.form.GetFormItemByLabel(labelName).(*tview.InputField)
	v.gender = v.form.GetFormItemByLabel(labelGender).(*tview.DropDown)
	v.formerClass = v.form.GetFormItemByLabel(labelFormerClass).(*tview.InputField)
	v.currentClass = v.form.GetFormItemByLabel(labelCurrentClass).(*tview.InputField)
	v.phone = v.form.GetFormItemByLabel(labelPhone).(*tview.InputField)
	v.healthIssues = v.form.GetFormItemByLabel(labelHealthIssues).(*tview.TextArea)

	return v
}

// read 读取原始输入，不做裁剪
func (v *registrationView) read() *dto.RegisterStudentRequest {
	_, gender := v.gender.GetCurrentOption()
	return &dto.RegisterStudentRequest{
		StudentID:    v.studentID.GetText(),
		Name:         v.name.GetText(),
		Gender:       gender,
		FormerClass:  v.formerClass.GetText(),
		CurrentClass: v.currentClass.GetText(),
		Phone:        v.phone.GetText(),
		HealthIssues: v.healthIssues.GetText(),
	}
}

// clear 清空所有字段，性别恢复为未选择
func (v *registrationView) clear() {
	v.studentID.SetText("")
	v.name.SetText("")
	v.gender.SetCurrentOption(-1)
	v.formerClass.SetText("")
	v.currentClass.SetText("")
	v.phone.SetText("")
	v.healthIssues.SetText("", false)
	v.form.SetFocus(0)
}

func (v *registrationView) submit() {
	log := actionLogger(v.logger, "register")

	if err := v.svc.Register(context.Background(), v.read()); err != nil {
		log.Info("登记未完成", zap.Error(err))
		notifyError(v.dialogs, err)
		return
	}

	log.Info("登记完成")
	v.dialogs.Info("Success", "Registration successful!")
	v.clear()
	if v.onRegistered != nil {
		v.onRegistered()
	}
}
