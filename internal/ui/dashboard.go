package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"student-registry/internal/dto"
	"student-registry/internal/service"
	apperrors "student-registry/pkg/errors"
)

const (
	buttonDelete  = "Delete"
	buttonRefresh = "Refresh"
	buttonExport  = "Export"
)

// dashboardView 登记记录表格
// 表格只是存储内容的临时投影，每次 reload 全量重绘
type dashboardView struct {
	root    *tview.Flex
	table   *tview.Table
	buttons *tview.Form

	svc       service.StudentService
	exporter  service.ExportService
	exportDir string
	dialogs   Dialogs
	focus     func(tview.Primitive)
	logger    *zap.Logger
}

func newDashboardView(svc service.StudentService, exporter service.ExportService, exportDir string, dialogs Dialogs, focus func(tview.Primitive), logger *zap.Logger) *dashboardView {
	v := &dashboardView{
		svc:       svc,
		exporter:  exporter,
		exportDir: exportDir,
		dialogs:   dialogs,
		focus:     focus,
		logger:    logger,
	}

	// 行选择在用户第一次移动光标或点击前保持关闭，
	// 否则 Draw 会把选中行自动挪到第一条记录
	v.table = tview.NewTable().
		SetSelectable(false, false).
		SetFixed(1, 0)
	v.table.SetBorder(true).SetTitle(" Dashboard ")
	v.table.SetInputCapture(v.captureTableKey)
	v.table.SetMouseCapture(v.captureTableMouse)
	v.table.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			v.clearSelection()
		case tcell.KeyTab, tcell.KeyBacktab, tcell.KeyEnter:
			v.focus(v.buttons)
		}
	})

	v.buttons = tview.NewForm().
		AddButton(buttonDelete, v.deleteSelected).
		AddButton(buttonRefresh, v.reload).
		AddButton(buttonExport, v.export)
	v.buttons.SetButtonsAlign(tview.AlignCenter)
	v.buttons.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			v.focus(v.table)
			return nil
		}
		return event
	})

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.buttons, 3, 0, false)
	// Delete 键直接删除选中行
	v.root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyDelete {
			v.deleteSelected()
			return nil
		}
		return event
	})

	v.renderHeader()
	return v
}

func (v *dashboardView) renderHeader() {
	for col, title := range service.ExportColumns {
		v.table.SetCell(0, col, tview.NewTableCell(title).
			SetSelectable(false).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignCenter).
			SetExpansion(1))
	}
}

// reload 丢弃现有行并按存储内容重绘
func (v *dashboardView) reload() {
	records, err := v.svc.List(context.Background())
	if err != nil {
		actionLogger(v.logger, "reload").Error("加载登记记录失败", zap.Error(err))
		notifyError(v.dialogs, err)
		return
	}

	v.table.Clear()
	v.renderHeader()
	for i := range records {
		v.renderRow(i+1, &records[i])
	}
	// 重绘后不保留旧的选中行
	v.clearSelection()
}

// selectRow 打开行选择并选中第 row 行
func (v *dashboardView) selectRow(row int) {
	v.table.SetSelectable(true, false)
	v.table.Select(row, 0)
}

// clearSelection 回到未选中状态
func (v *dashboardView) clearSelection() {
	v.table.SetSelectable(false, false)
	v.table.Select(0, 0)
}

func (v *dashboardView) selecting() bool {
	rows, _ := v.table.GetSelectable()
	return rows
}

// captureTableKey 未选中时，第一次方向键选中第一条记录
func (v *dashboardView) captureTableKey(event *tcell.EventKey) *tcell.EventKey {
	if v.selecting() || v.recordCount() == 0 {
		return event
	}
	switch event.Key() {
	case tcell.KeyDown, tcell.KeyUp, tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgDn, tcell.KeyPgUp:
	case tcell.KeyRune:
		switch event.Rune() {
		case 'j', 'k', 'g', 'G':
		default:
			return event
		}
	default:
		return event
	}
	v.selectRow(1)
	return nil
}

// captureTableMouse 点击前打开行选择，由表格自身选中被点击的行
func (v *dashboardView) captureTableMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action == tview.MouseLeftClick && !v.selecting() && v.recordCount() > 0 {
		v.table.SetSelectable(true, false)
	}
	return action, event
}

func (v *dashboardView) renderRow(row int, r *dto.StudentResponse) {
	values := []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.StudentID,
		r.Name,
		r.Gender,
		strconv.Itoa(r.FormerClass),
		strconv.Itoa(r.CurrentClass),
		r.Phone,
		r.HealthIssues,
		r.SubmissionDate,
	}
	for col, text := range values {
		c := tview.NewTableCell(tview.Escape(text)).
			SetAlign(tview.AlignCenter).
			SetExpansion(1)
		if col == 0 {
			c.SetReference(r.ID)
		}
		v.table.SetCell(row, col, c)
	}
}

// selectedID 返回当前选中行的主键；未选中返回 0
func (v *dashboardView) selectedID() uint {
	if !v.selecting() {
		return 0
	}
	row, _ := v.table.GetSelection()
	if row < 1 || row >= v.table.GetRowCount() {
		return 0
	}
	id, ok := v.table.GetCell(row, 0).GetReference().(uint)
	if !ok {
		return 0
	}
	return id
}

// recordCount 当前表格中的数据行数（不含表头）
func (v *dashboardView) recordCount() int {
	return v.table.GetRowCount() - 1
}

func (v *dashboardView) deleteSelected() {
	id := v.selectedID()
	if id == 0 {
		notifyError(v.dialogs, apperrors.ErrNoSelection)
		return
	}

	v.dialogs.Confirm("Confirm Delete", "Are you sure you want to delete the selected record?", func() {
		log := actionLogger(v.logger, "delete").With(zap.Uint("id", id))
		if err := v.svc.Remove(context.Background(), id); err != nil {
			log.Error("删除失败", zap.Error(err))
			notifyError(v.dialogs, err)
			return
		}
		log.Info("删除完成")
		v.reload()
		v.dialogs.Info("Deleted", "Record has been deleted.")
	})
}

func (v *dashboardView) export() {
	log := actionLogger(v.logger, "export")

	buf, filename, err := v.exporter.ExportStudents(context.Background())
	if errors.Is(err, service.ErrExportNoRecords) {
		v.dialogs.Info("Export", "There are no records to export.")
		return
	}
	if err != nil {
		log.Error("导出失败", zap.Error(err))
		notifyError(v.dialogs, err)
		return
	}

	path := filepath.Join(v.exportDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Error("写入导出文件失败", zap.String("path", path), zap.Error(err))
		v.dialogs.Error("Export Error", "Could not write "+path+": "+err.Error())
		return
	}

	log.Info("导出完成", zap.String("path", path))
	v.dialogs.Info("Exported", "Saved to "+path)
}
