package repository

import (
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type ScheduleEntryModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null;index:idx_schedule_entries_user_day,priority:1"`
	Source      string    `gorm:"column:source;type:varchar(16);not null"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(255);not null"`
	SubjectCode string    `gorm:"column:subject_code;type:varchar(64);not null;default:''"`
	SessionType string    `gorm:"column:session_type;type:varchar(16);not null"`
	SlotCode    string    `gorm:"column:slot_code;type:varchar(16);not null;default:''"`
	SlotLabel   string    `gorm:"column:slot_label;type:varchar(255);not null;default:''"`
	RoomNumber  string    `gorm:"column:room_number;type:varchar(64);not null;default:''"`
	Credit      float64   `gorm:"column:credit;type:double precision;not null;default:0"`
	Day         string    `gorm:"column:day;type:varchar(16);not null;index:idx_schedule_entries_user_day,priority:2"`
	StartTime   string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime     string    `gorm:"column:end_time;type:varchar(5);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ScheduleEntryModel) TableName() string {
	return "schedule_entries"
}

func (m *ScheduleEntryModel) ToEntity() (*domain.ScheduleEntry, error) {
	entryID, err := domain.EntryIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	source, err := domain.NewEntrySource(m.Source)
	if err != nil {
		return nil, err
	}

	return domain.Reconstitute(
		entryID,
		userID,
		source,
		domain.EntryDetails{
			SubjectName: m.SubjectName,
			SubjectCode: m.SubjectCode,
			SessionType: domain.SessionType(m.SessionType),
			SlotCode:    m.SlotCode,
			SlotLabel:   m.SlotLabel,
			RoomNumber:  m.RoomNumber,
			Credit:      m.Credit,
			Day:         domain.Weekday(m.Day),
			StartTime:   m.StartTime,
			EndTime:     m.EndTime,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromEntity(e *domain.ScheduleEntry) *ScheduleEntryModel {
	d := e.Details()

	return &ScheduleEntryModel{
		ID:          e.ID().String(),
		UserID:      e.UserID().String(),
		Source:      string(e.Source()),
		SubjectName: d.SubjectName,
		SubjectCode: d.SubjectCode,
		SessionType: string(d.SessionType),
		SlotCode:    d.SlotCode,
		SlotLabel:   d.SlotLabel,
		RoomNumber:  d.RoomNumber,
		Credit:      d.Credit,
		Day:         string(d.Day),
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

type PushSubscriptionModel struct {
	UserID    string    `gorm:"column:user_id;type:uuid;primaryKey"`
	Endpoint  string    `gorm:"column:endpoint;type:text;not null"`
	P256dh    string    `gorm:"column:p256dh;type:text;not null"`
	Auth      string    `gorm:"column:auth;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}

func (m *PushSubscriptionModel) ToEntity() (domain.UserSubscription, error) {
	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return domain.UserSubscription{}, err
	}

	sub, err := domain.NewPushSubscription(m.Endpoint, m.P256dh, m.Auth)
	if err != nil {
		return domain.UserSubscription{}, err
	}

	return domain.UserSubscription{
		UserID:       userID,
		Subscription: sub,
	}, nil
}

type DayOverrideModel struct {
	UserID    string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_day_overrides_user_date,priority:1"`
	Date      string    `gorm:"column:date;type:varchar(10);not null;uniqueIndex:idx_day_overrides_user_date,priority:2"`
	Day       string    `gorm:"column:day;type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (DayOverrideModel) TableName() string {
	return "day_overrides"
}

func (m *DayOverrideModel) ToEntity() (*domain.DayOverride, error) {
	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	day, err := domain.NewWeekday(m.Day)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteDayOverride(userID, m.Date, day, m.CreatedAt), nil
}

// AllModels lists every table managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&ScheduleEntryModel{},
		&PushSubscriptionModel{},
		&DayOverrideModel{},
	}
}
