package errors

import (
	"errors"
	"fmt"
)

// ErrNoSelection 删除时未选中任何记录（调用方前置条件不满足）
var ErrNoSelection = errors.New("please select a record to delete")

// StorageError 存储介质不可用或写入失败
// 操作被中止，进程继续运行
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError 包装底层存储错误
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
