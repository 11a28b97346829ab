package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"student-registry/internal/model"
	apperrors "student-registry/pkg/errors"
)

// ── 测试辅助 ──

func setupTestExportService() (*exportService, *mockStudentRepo) {
	studentRepo := newMockStudentRepo()
	svc := NewExportService(newMockRepository(studentRepo), zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return fixedNow }
	return svc, studentRepo
}

// ── ExportStudents 测试 ──

func TestExportService_ExportStudents_NoRecords(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportStudents(context.Background())
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，实际: %v", err)
	}
}

func TestExportService_ExportStudents_StorageError(t *testing.T) {
	svc, repo := setupTestExportService()
	repo.listErr = errMockStorage

	_, _, err := svc.ExportStudents(context.Background())
	var serr *apperrors.StorageError
	if !errors.As(err, &serr) {
		t.Errorf("期望 *StorageError，实际: %v", err)
	}
}

func TestExportService_ExportStudents_Success(t *testing.T) {
	svc, repo := setupTestExportService()
	first := repo.seed("Ann Lee")
	repo.seed("Bob Ray")

	buf, filename, err := svc.ExportStudents(context.Background())
	if err != nil {
		t.Fatalf("ExportStudents 应成功: %v", err)
	}
	if filename != "students-20240901-140509.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("无法解析导出文件: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望 1 行表头 + 2 行数据，实际=%d", len(rows))
	}
	if diff := cmp.Diff(ExportColumns, rows[0]); diff != "" {
		t.Errorf("表头不符 (-want +got):\n%s", diff)
	}
	wantFirst := []string{"1", "100", "Ann Lee", "Male", "3", "4", "0123456789", "", first.SubmissionDate}
	if diff := cmp.Diff(wantFirst, rows[1]); diff != "" {
		t.Errorf("首行数据不符 (-want +got):\n%s", diff)
	}
	if rows[2][2] != "Bob Ray" {
		t.Errorf("第二行姓名不符: %s", rows[2][2])
	}
}

func TestWriteStudentSheet_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeStudentSheet(f, "Missing", []model.Student{{ID: 1, Name: "Ann Lee"}})
	if err == nil {
		t.Error("工作表不存在时应返回错误")
	}
}
