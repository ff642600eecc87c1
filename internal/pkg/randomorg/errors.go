package randomorg

import "fmt"

// TransportError 网络层失败：连接失败、超时等
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("randomorg transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError 远端返回了结构化错误载荷，携带服务端给出的消息
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("randomorg service error %d: %s", e.Code, e.Message)
}

// ProtocolError 响应格式不符合预期：缺字段、数量不对、数值越界或重复
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "randomorg protocol error: " + e.Reason
}
