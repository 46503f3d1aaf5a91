package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",
	ErrUserNoEmail:           "用户未登记邮箱",

	// 区域相关错误码
	ErrZoneNotFound:      "区域不存在",
	ErrZoneHasDependents: "区域下存在活跃传感器或事件，无法删除",

	// 传感器相关错误码
	ErrSensorNotFound:     "传感器不存在",
	ErrSensorHasEvents:    "传感器下存在事件记录，无法删除",
	ErrSensorZoneNotFound: "传感器引用的区域不存在",

	// 预案相关错误码
	ErrScenarioNotFound:  "预案不存在",
	ErrScenarioHasEvents: "预案下存在事件记录，无法删除",

	// 事件相关错误码
	ErrEventNotFound:         "事件不存在",
	ErrEventSensorNotFound:   "事件引用的传感器不存在",
	ErrEventScenarioNotFound: "事件引用的预案不存在",
	ErrEventAlreadyResolved:  "事件已被解决",

	// 报告相关错误码
	ErrReportNotFound: "报告不存在或已过期",
	ErrEmailDelivery:  "报告邮件发送失败",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserNoEmail:           StatusBadRequest,

	// 区域相关错误码
	ErrZoneNotFound:      StatusNotFound,
	ErrZoneHasDependents: StatusConflict,

	// 传感器相关错误码
	ErrSensorNotFound:     StatusNotFound,
	ErrSensorHasEvents:    StatusConflict,
	ErrSensorZoneNotFound: StatusBadRequest,

	// 预案相关错误码
	ErrScenarioNotFound:  StatusNotFound,
	ErrScenarioHasEvents: StatusConflict,

	// 事件相关错误码
	ErrEventNotFound:         StatusNotFound,
	ErrEventSensorNotFound:   StatusBadRequest,
	ErrEventScenarioNotFound: StatusBadRequest,
	ErrEventAlreadyResolved:  StatusConflict,

	// 报告相关错误码
	ErrReportNotFound: StatusNotFound,
	ErrEmailDelivery:  StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
