package errors

import (
	"errors"
	"testing"
)

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("insert", cause)

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("期望 *StorageError，实际: %T", err)
	}
	if se.Op != "insert" {
		t.Errorf("期望 Op=insert，实际=%s", se.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("StorageError 应可解包出底层错误")
	}
}

func TestNewStorageError_Nil(t *testing.T) {
	if err := NewStorageError("delete", nil); err != nil {
		t.Errorf("nil 错误不应被包装，实际: %v", err)
	}
}
