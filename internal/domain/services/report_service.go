package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// AllZones 区域选择器的哨兵值，表示报告覆盖所有区域
const AllZones uint = 0

// 报告覆盖的时间窗口长度：截至生成时刻的最近7天
const reportWindow = 7 * 24 * time.Hour

// 文件名只保留字母、数字、下划线和连字符
var fileNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// InterfaceReportService defines the report service interface
type InterfaceReportService interface {
	GenerateWeeklyReport(zoneID uint, comment string, caller CallerIdentity) (*ReportArtifact, error)
}

// ReportArtifact 报告生成产物：UTF-8文本字节加生成的文件名。
// ReportID 用于下载接口按引用取回
type ReportArtifact struct {
	ReportID    string    `json:"report_id"`
	FileName    string    `json:"file_name"`
	Content     []byte    `json:"-"`
	GeneratedAt time.Time `json:"generated_at"`
	ZoneCount   int       `json:"zone_count"`
	SensorCount int       `json:"sensor_count"`
	EventCount  int       `json:"event_count"`
}

// ReportService 提供周报聚合服务，只读，不修改任何记录
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService 创建一个新的报告服务
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// GenerateWeeklyReport 生成一个区域（或所有区域）最近7天的文字摘要。
// zoneID 为 AllZones 时覆盖系统内全部区域，并在分区小节前输出汇总
func (s *ReportService) GenerateWeeklyReport(zoneID uint, comment string, caller CallerIdentity) (*ReportArtifact, error) {
	now := time.Now()
	weekAgo := now.Add(-reportWindow)

	// 解析目标区域集合
	var zones []models.Zone
	if zoneID == AllZones {
		if err := s.DB.Order("id").Find(&zones).Error; err != nil {
			return nil, err
		}
	} else {
		var zone models.Zone
		if err := s.DB.First(&zone, zoneID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrZoneNotFound
			}
			return nil, err
		}
		zones = []models.Zone{zone}
	}

	// 按区域收集传感器和窗口内的事件
	zoneSensors := make(map[uint][]models.Sensor, len(zones))
	zoneEvents := make(map[uint][]models.Event, len(zones))
	totalSensors := 0
	totalEvents := 0
	totalArea := 0.0

	for _, zone := range zones {
		var sensors []models.Sensor
		if err := s.DB.Where("zone_id = ?", zone.ID).Order("id").Find(&sensors).Error; err != nil {
			return nil, err
		}

		var events []models.Event
		if err := s.DB.Preload("Sensor").Preload("ResolvedUser").
			Joins("JOIN sensors ON sensors.id = events.sensor_id").
			Where("sensors.zone_id = ? AND events.created_at >= ? AND events.created_at <= ?", zone.ID, weekAgo, now).
			Order("events.created_at DESC").
			Find(&events).Error; err != nil {
			return nil, err
		}

		zoneSensors[zone.ID] = sensors
		zoneEvents[zone.ID] = events
		totalSensors += len(sensors)
		totalEvents += len(events)
		totalArea += zone.Area
	}

	// 组装报告文本
	var sb strings.Builder
	bar := strings.Repeat("=", 80)

	sb.WriteString(bar + "\n")
	sb.WriteString("               PYROSAFE SYSTEM WEEKLY REPORT\n")
	sb.WriteString(fmt.Sprintf("               %s – %s\n", weekAgo.Format("02.01.2006"), now.Format("02.01.2006")))
	sb.WriteString(bar + "\n\n")

	if zoneID == AllZones {
		sb.WriteString("SUMMARY:\n")
		sb.WriteString(fmt.Sprintf(" Zones: %d | Total area: %.1f m²\n", len(zones), totalArea))
		sb.WriteString(fmt.Sprintf(" Sensors: %d | Events this week: %d\n\n", totalSensors, totalEvents))
	}

	for _, zone := range zones {
		s.writeZoneSection(&sb, &zone, zoneSensors[zone.ID], zoneEvents[zone.ID])
	}

	sb.WriteString("GUARD COMMENT:\n")
	if strings.TrimSpace(comment) == "" {
		sb.WriteString("No comments\n")
	} else {
		sb.WriteString(strings.TrimSpace(comment) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", now.Format("02.01.2006 15:04")))
	sb.WriteString(fmt.Sprintf("Guard: %s\n", caller.Username))
	sb.WriteString(bar + "\n")

	return &ReportArtifact{
		ReportID:    uuid.NewString(),
		FileName:    buildReportFileName(zoneID, zones, now),
		Content:     []byte(sb.String()),
		GeneratedAt: now,
		ZoneCount:   len(zones),
		SensorCount: totalSensors,
		EventCount:  totalEvents,
	}, nil
}

// writeZoneSection 输出单个区域的小节：区域概况、传感器列表、事件列表
func (s *ReportService) writeZoneSection(sb *strings.Builder, zone *models.Zone, sensors []models.Sensor, events []models.Event) {
	sb.WriteString(fmt.Sprintf("Zone: %s | Floor: %d | Area: %.1f m²\n", zone.ZoneName, zone.Floor, zone.Area))
	sb.WriteString(fmt.Sprintf("Sensors: %d | Events this week: %d\n\n", len(sensors), len(events)))

	sb.WriteString("SENSORS:\n")
	for _, sensor := range sensors {
		sb.WriteString(fmt.Sprintf(" • %s (%s) — %s\n", sensor.SensorName, sensor.SensorType, sensor.SensorValue))
	}
	if len(sensors) == 0 {
		sb.WriteString("   — No sensors in this zone —\n")
	}

	sb.WriteString("\nEVENTS:\n")
	if len(events) > 0 {
		for i := range events {
			ev := &events[i]

			resolution := "UNRESOLVED"
			if ev.Status == models.EventStatusResolved {
				resolverName := DefaultResolverName
				if ev.ResolvedUser != nil {
					resolverName = ev.ResolvedUser.Username
				}
				resolution = "Resolved by " + resolverName
			}

			sensorName := "—"
			if ev.Sensor != nil {
				sensorName = ev.Sensor.SensorName
			}

			sb.WriteString(fmt.Sprintf(" • [%s] #%d | %s | %s | %s\n",
				ev.CreatedAt.Format("02.01 15:04"), ev.ID, sensorName, ev.Severity, resolution))
			sb.WriteString(fmt.Sprintf("   %s\n", ev.Description))
		}
	} else {
		sb.WriteString("   — No events this week —\n")
	}

	sb.WriteString("\n")
}

// buildReportFileName 由净化后的区域名和生成时间戳构造文件名
func buildReportFileName(zoneID uint, zones []models.Zone, now time.Time) string {
	token := "All_Zones"
	if zoneID != AllZones && len(zones) == 1 {
		name := zones[0].ZoneName
		if name == "" {
			name = "Unknown"
		}
		token = fileNameSanitizer.ReplaceAllString(name, "_")
	}

	return fmt.Sprintf("PyroSafe_Report_%s_%s.txt", token, now.Format("20060102_1504"))
}
