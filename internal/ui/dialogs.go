package ui

import (
	"errors"

	"github.com/rivo/tview"

	"student-registry/internal/validation"
	apperrors "student-registry/pkg/errors"
)

const (
	buttonOK  = "OK"
	buttonYes = "Yes"
	buttonNo  = "No"
)

// Dialogs 模态提示
// 同一时刻最多显示一个对话框，关闭后焦点回到原控件
type Dialogs interface {
	Error(title, message string)
	Info(title, message string)
	// Confirm 用户选择 Yes 时调用 onYes
	Confirm(title, message string, onYes func())
}

// modalDialogs 基于 tview.Modal 的实现，覆盖在 pages 之上
type modalDialogs struct {
	app   *tview.Application
	pages *tview.Pages

	prevFocus tview.Primitive
	onYes     func()
}

func newModalDialogs(app *tview.Application, pages *tview.Pages) *modalDialogs {
	return &modalDialogs{app: app, pages: pages}
}

func (d *modalDialogs) Error(title, message string) {
	d.show("[red::b]"+title+"[-::-]", message, []string{buttonOK}, nil)
}

func (d *modalDialogs) Info(title, message string) {
	d.show("[green::b]"+title+"[-::-]", message, []string{buttonOK}, nil)
}

func (d *modalDialogs) Confirm(title, message string, onYes func()) {
	d.show("[yellow::b]"+title+"[-::-]", message, []string{buttonYes, buttonNo}, onYes)
}

func (d *modalDialogs) show(title, message string, buttons []string, onYes func()) {
	if d.pages.HasPage(pageDialog) {
		d.pages.RemovePage(pageDialog)
	}
	d.onYes = onYes

	modal := tview.NewModal().
		SetText(title + "\n\n" + tview.Escape(message)).
		AddButtons(buttons).
		SetDoneFunc(func(_ int, label string) {
			d.dismiss(label)
		})

	if d.app != nil && d.prevFocus == nil {
		d.prevFocus = d.app.GetFocus()
	}
	d.pages.AddPage(pageDialog, modal, false, true)
	if d.app != nil {
		d.app.SetFocus(modal)
	}
}

// dismiss 关闭对话框；label 为 Yes 时执行确认回调
func (d *modalDialogs) dismiss(label string) {
	onYes := d.onYes
	d.onYes = nil
	d.pages.RemovePage(pageDialog)
	if d.app != nil && d.prevFocus != nil {
		d.app.SetFocus(d.prevFocus)
	}
	d.prevFocus = nil

	if label == buttonYes && onYes != nil {
		onYes()
	}
}

// notifyError 按错误类别展示提示
func notifyError(d Dialogs, err error) {
	var verr *validation.Error
	var serr *apperrors.StorageError

	switch {
	case errors.As(err, &verr):
		d.Error("Input Error", verr.Reason)
	case errors.Is(err, apperrors.ErrNoSelection):
		d.Error("Selection Error", "Please select a record to delete.")
	case errors.As(err, &serr):
		d.Error("Storage Error", "The operation was not completed: "+serr.Err.Error())
	default:
		d.Error("Error", err.Error())
	}
}
