package model

import "time"

const SettingsID = "default"

// Settings 活動設定（單列）
type Settings struct {
	ID             string     `json:"id" db:"id"`
	EventName      string     `json:"event_name" db:"event_name"`
	EventStartTime *time.Time `json:"event_start_time" db:"event_start_time"`
	VotingEnabled  bool       `json:"voting_enabled" db:"voting_enabled"`
	PromoVideo     *string    `json:"promo_video" db:"promo_video"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`

	PromoVideoURL *string `json:"promo_video_url" db:"-"`
}

type UpdateSettingsParams struct {
	EventName           *string
	EventStartTime      *time.Time
	ClearEventStartTime bool
	VotingEnabled       *bool
}

// PublicConfig 前台可見的活動設定
type PublicConfig struct {
	EventName      string     `json:"event_name"`
	EventStartTime *time.Time `json:"event_start_time"`
	VotingEnabled  bool       `json:"voting_enabled"`
	IsEventStarted bool       `json:"is_event_started"`
	ServerTime     time.Time  `json:"server_time"`
	PromoVideoURL  *string    `json:"promo_video_url"`
}

// IsEventStarted 未設定開始時間視為已開始
func (s *Settings) IsEventStarted(now time.Time) bool {
	if s.EventStartTime == nil {
		return true
	}
	return !now.Before(*s.EventStartTime)
}
