package response

import (
	"Lucky99/internal/api/dto"
	"Lucky99/internal/pkg/randomorg"
	"Lucky99/internal/repository"
	"Lucky99/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误：所有错误在这里转成非致命的提示信息，不中断会话
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	var transportErr *randomorg.TransportError
	if errors.As(err, &transportErr) {
		Fail(c, BadGateway, "无法连接随机数服务，请检查网络后重试")
		return
	}

	var serviceErr *randomorg.ServiceError
	if errors.As(err, &serviceErr) {
		Fail(c, BadGateway, "随机数服务返回错误："+serviceErr.Message+"，请检查密钥配置")
		return
	}

	var protocolErr *randomorg.ProtocolError
	if errors.As(err, &protocolErr) {
		log.Error("randomorg protocol error", "err", err)
		Fail(c, BadGateway, "随机数服务响应异常，请稍后重试")
		return
	}

	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) {
		log.Error("storage error", "err", err)
		Fail(c, InternalServerError, "数据存储异常，请稍后重试")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
