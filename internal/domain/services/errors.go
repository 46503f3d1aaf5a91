package services

import "errors"

// 领域错误定义。控制器通过 errors.Is 将其映射到错误码，
// 服务层不直接感知HTTP状态。
var (
	// 校验类错误
	ErrZoneNameRequired    = errors.New("区域名称不能为空")
	ErrDescriptionRequired = errors.New("事件描述不能为空")
	ErrUserFieldsRequired  = errors.New("用户名和密码不能为空")

	// 引用类错误（创建时引用的实体不存在）
	ErrSensorZoneNotFound    = errors.New("传感器引用的区域不存在")
	ErrEventSensorNotFound   = errors.New("事件引用的传感器不存在")
	ErrEventScenarioNotFound = errors.New("事件引用的预案不存在")

	// 实体不存在
	ErrZoneNotFound     = errors.New("区域不存在")
	ErrSensorNotFound   = errors.New("传感器不存在")
	ErrScenarioNotFound = errors.New("预案不存在")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEventNotFound    = errors.New("事件不存在")

	// 冲突类错误（状态机或删除保护）
	ErrZoneHasDependents    = errors.New("区域下存在活跃传感器或事件，无法删除")
	ErrSensorHasEvents      = errors.New("传感器下存在事件记录，无法删除")
	ErrScenarioHasEvents    = errors.New("预案下存在事件记录，无法删除")
	ErrEventAlreadyResolved = errors.New("事件已被解决")

	// 用户相关
	ErrUserAlreadyExist      = errors.New("用户名或邮箱已被占用")
	ErrUserPasswordIncorrect = errors.New("邮箱或密码错误")
	ErrUserNoEmail           = errors.New("用户未登记邮箱")
)

// CallerIdentity 表示经过认证的调用者身份，由外部身份解析
// （JWT中间件）提供，核心服务只消费 (用户ID, 显示名) 这对事实
type CallerIdentity struct {
	UserID   uint
	Username string
}

// DefaultResolverName 当解决人用户记录缺失时使用的兜底显示名
const DefaultResolverName = "Guard"
