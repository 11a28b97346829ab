package service

import (
	"context"
	"errors"

	"student-registry/internal/model"
	"student-registry/internal/repository"
)

var errMockStorage = errors.New("mock: database is locked")

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint

	createErr error
	deleteErr error
	listErr   error

	createCalls int
	deleteCalls int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	student.ID = m.nextID
	m.nextID++
	cp := *student
	m.students[cp.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) ListAll(_ context.Context) ([]model.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Student, 0, len(m.students))
	for id := uint(1); id < m.nextID; id++ {
		if s, ok := m.students[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

// seed 直接写入一条记录，绕过 Service
func (m *mockStudentRepo) seed(name string) *model.Student {
	s := &model.Student{
		StudentID:      "100",
		Name:           name,
		Gender:         "Male",
		FormerClass:    3,
		CurrentClass:   4,
		Phone:          "0123456789",
		SubmissionDate: "2024-01-01 08:00:00",
	}
	_ = m.Create(context.Background(), s)
	m.createCalls--
	return s
}

func newMockRepository(student *mockStudentRepo) *repository.Repository {
	return &repository.Repository{Student: student}
}
