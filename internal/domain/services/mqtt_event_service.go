package services

import (
	"encoding/json"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/pkg/logger"
)

// 主题常量
const (
	// 事件创建通知主题
	TopicEventCreated = "pyrosafe/events/created"

	// 事件解决通知主题
	TopicEventResolved = "pyrosafe/events/resolved"
)

// InterfaceMQTTEventService 定义MQTT事件广播服务接口
type InterfaceMQTTEventService interface {
	Connect() error
	Disconnect()
	PublishEventCreated(event *EventProjection)
	PublishEventResolved(eventID uint, result *ResolveResult)
}

// MQTTEventMessage MQTT消息基础结构
type MQTTEventMessage struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MQTTEventService 把事件生命周期变化广播到监控主题。
// 广播是尽力而为的：连接或发布失败只记日志，绝不影响请求结果
type MQTTEventService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex // 保护IsConnected字段的读写
	PublishMutex   sync.Mutex   // 保护MQTT消息发布
}

// NewMQTTEventService 创建一个新的MQTT事件广播服务
func NewMQTTEventService(cfg *config.Config) InterfaceMQTTEventService {
	return &MQTTEventService{
		Config: cfg,
	}
}

// Connect 连接MQTT服务器。未配置Broker地址时视为禁用，直接返回
func (s *MQTTEventService) Connect() error {
	if s.Config.MQTTBrokerURL == "" {
		logger.Info("未配置MQTT Broker，事件广播已禁用")
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	opts.SetClientID(s.Config.MQTTClientID)
	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		s.setConnected(false)
		logger.Warning("MQTT连接丢失: %v", err)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		s.setConnected(true)
		logger.Info("MQTT已连接: %s", s.Config.MQTTBrokerURL)
	})

	s.Client = mqtt.NewClient(opts)
	token := s.Client.Connect()
	if !token.WaitTimeout(10*time.Second) || token.Error() != nil {
		return token.Error()
	}

	s.setConnected(true)
	return nil
}

// Disconnect 断开MQTT连接
func (s *MQTTEventService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.setConnected(false)
}

// PublishEventCreated 广播事件创建通知
func (s *MQTTEventService) PublishEventCreated(event *EventProjection) {
	s.publish(TopicEventCreated, MQTTEventMessage{
		Type:      "event_created",
		Timestamp: time.Now().Unix(),
		Payload:   event,
	})
}

// PublishEventResolved 广播事件解决通知
func (s *MQTTEventService) PublishEventResolved(eventID uint, result *ResolveResult) {
	s.publish(TopicEventResolved, MQTTEventMessage{
		Type:      "event_resolved",
		Timestamp: time.Now().Unix(),
		Payload:   result,
	})
}

// publish 序列化并发布消息，失败只记日志
func (s *MQTTEventService) publish(topic string, message MQTTEventMessage) {
	if !s.connected() {
		return
	}

	payload, err := json.Marshal(message)
	if err != nil {
		logger.Error("MQTT消息序列化失败: %v", err)
		return
	}

	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	token := s.Client.Publish(topic, byte(s.Config.MQTTQoS), s.Config.MQTTRetained, payload)
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		logger.Error("MQTT消息发布失败 [%s]: %v", topic, token.Error())
	}
}

func (s *MQTTEventService) connected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.IsConnected
}

func (s *MQTTEventService) setConnected(v bool) {
	s.connectedMutex.Lock()
	defer s.connectedMutex.Unlock()
	s.IsConnected = v
}
