package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
	// ErrUserNoEmail - 400: 用户未登记邮箱.
	ErrUserNoEmail
)

// 区域相关错误码 (102xxx).
const (
	// ErrZoneNotFound - 404: 区域不存在.
	ErrZoneNotFound int = iota + 102000
	// ErrZoneHasDependents - 409: 区域下存在活跃传感器或事件.
	ErrZoneHasDependents
)

// 传感器相关错误码 (103xxx).
const (
	// ErrSensorNotFound - 404: 传感器不存在.
	ErrSensorNotFound int = iota + 103000
	// ErrSensorHasEvents - 409: 传感器下存在事件记录.
	ErrSensorHasEvents
	// ErrSensorZoneNotFound - 400: 传感器引用的区域不存在.
	ErrSensorZoneNotFound
)

// 预案相关错误码 (104xxx).
const (
	// ErrScenarioNotFound - 404: 预案不存在.
	ErrScenarioNotFound int = iota + 104000
	// ErrScenarioHasEvents - 409: 预案下存在事件记录.
	ErrScenarioHasEvents
)

// 事件相关错误码 (105xxx).
const (
	// ErrEventNotFound - 404: 事件不存在.
	ErrEventNotFound int = iota + 105000
	// ErrEventSensorNotFound - 400: 事件引用的传感器不存在.
	ErrEventSensorNotFound
	// ErrEventScenarioNotFound - 400: 事件引用的预案不存在.
	ErrEventScenarioNotFound
	// ErrEventAlreadyResolved - 409: 事件已被解决.
	ErrEventAlreadyResolved
)

// 报告相关错误码 (106xxx).
const (
	// ErrReportNotFound - 404: 报告不存在或已过期.
	ErrReportNotFound int = iota + 106000
	// ErrEmailDelivery - 500: 报告邮件发送失败.
	ErrEmailDelivery
)

// 数据库相关错误码 (107xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
