package repository

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// StorageError 统一包装底层存储错误并携带原始信息，网关本身不做自动重试
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: pkgerrors.WithStack(err)}
}
