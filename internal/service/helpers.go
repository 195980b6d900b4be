package service

import (
	"errors"

	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// normalizePage 페이지 파라미터 기본값/상한 정규화
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func isOptimisticLock(err error) bool {
	return errors.Is(err, pkgerrors.ErrOptimisticLock)
}
