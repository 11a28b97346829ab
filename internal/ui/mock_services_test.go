package ui

import (
	"bytes"
	"context"
	"errors"

	"student-registry/internal/dto"
	"student-registry/internal/service"
	"student-registry/internal/validation"
	apperrors "student-registry/pkg/errors"
)

var errMockStorage = errors.New("mock: unable to open database file")

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock StudentService ──
// 使用真实校验规则，记录保存在内存中

type mockStudentService struct {
	records []dto.StudentResponse
	nextID  uint

	registerErr error
	removeErr   error
	listErr     error

	registerCalls int
	removeCalls   int
	listCalls     int
}

func newMockStudentService() *mockStudentService {
	return &mockStudentService{nextID: 1}
}

func (m *mockStudentService) Register(_ context.Context, req *dto.RegisterStudentRequest) error {
	m.registerCalls++
	v, err := validation.Validate(req)
	if err != nil {
		return err
	}
	if m.registerErr != nil {
		return m.registerErr
	}
	m.records = append(m.records, dto.StudentResponse{
		ID:             m.nextID,
		StudentID:      v.StudentID,
		Name:           v.Name,
		Gender:         v.Gender,
		FormerClass:    v.FormerClass,
		CurrentClass:   v.CurrentClass,
		Phone:          v.Phone,
		HealthIssues:   v.HealthIssues,
		SubmissionDate: "2024-09-01 14:05:09",
	})
	m.nextID++
	return nil
}

func (m *mockStudentService) Remove(_ context.Context, id uint) error {
	m.removeCalls++
	if id == 0 {
		return apperrors.ErrNoSelection
	}
	if m.removeErr != nil {
		return m.removeErr
	}
	kept := m.records[:0]
	for _, r := range m.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func (m *mockStudentService) List(_ context.Context) ([]dto.StudentResponse, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]dto.StudentResponse, len(m.records))
	copy(out, m.records)
	return out, nil
}

// seed 直接写入一条合法记录
func (m *mockStudentService) seed(name string) uint {
	id := m.nextID
	_ = m.Register(context.Background(), &dto.RegisterStudentRequest{
		StudentID:    "100",
		Name:         name,
		Gender:       "Male",
		FormerClass:  "3",
		CurrentClass: "4",
		Phone:        "0123456789",
	})
	m.registerCalls--
	return id
}

// ── Mock ExportService ──

type mockExportService struct {
	content  []byte
	filename string
	err      error
}

func (m *mockExportService) ExportStudents(_ context.Context) (*bytes.Buffer, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return bytes.NewBuffer(m.content), m.filename, nil
}

var (
	_ service.StudentService = (*mockStudentService)(nil)
	_ service.ExportService  = (*mockExportService)(nil)
)

// ── 记录型对话框 ──

type shownDialog struct {
	kind    string
	title   string
	message string
}

type recordingDialogs struct {
	shown   []shownDialog
	confirm bool // Confirm 时模拟用户点击 Yes
}

func (d *recordingDialogs) Error(title, message string) {
	d.shown = append(d.shown, shownDialog{"error", title, message})
}

func (d *recordingDialogs) Info(title, message string) {
	d.shown = append(d.shown, shownDialog{"info", title, message})
}

func (d *recordingDialogs) Confirm(title, message string, onYes func()) {
	d.shown = append(d.shown, shownDialog{"confirm", title, message})
	if d.confirm {
		onYes()
	}
}

func (d *recordingDialogs) last() shownDialog {
	if len(d.shown) == 0 {
		return shownDialog{}
	}
	return d.shown[len(d.shown)-1]
}
