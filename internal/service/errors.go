package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrPredictionCount     = errors.New("必须填写 10 个预测数字")
	ErrPredictionZero      = errors.New("有未填写的预测数字")
	ErrPredictionRange     = errors.New("预测数字必须在 1-99 之间")
	ErrPredictionDuplicate = errors.New("预测数字不能重复")
	ErrIdentityMissing     = errors.New("请填写姓名和邮箱")
	ErrSessionNotFound     = errors.New("游戏会话不存在或已过期")
	ErrPhaseInvalid        = errors.New("当前阶段不能执行此操作")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrPredictionCount:     BadRequest,
	ErrPredictionZero:      BadRequest,
	ErrPredictionRange:     BadRequest,
	ErrPredictionDuplicate: BadRequest,
	ErrIdentityMissing:     BadRequest,
	ErrSessionNotFound:     NotFound,
	ErrPhaseInvalid:        BadRequest,
	UnExpectedError:        InternalServerError,
}
