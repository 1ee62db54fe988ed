package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	FirstName    string   `gorm:"size:255;not null" json:"first_name"`
	LastName     string   `gorm:"size:255;not null" json:"last_name"`
	Email        string   `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive     bool     `gorm:"default:true;not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	CreatedMessages  []Message    `gorm:"foreignKey:CreatorID" json:"-"`
	ReceivedMessages []Message    `gorm:"foreignKey:ReceiverID" json:"-"`
	PaidTimeOff      *PaidTimeOff `gorm:"foreignKey:UserID" json:"-"`
}

// FullName é usado em listagens e no corpo de e-mails.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Message é imutável após a criação; apenas criador e destinatário podem lê-la.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatorID  uint      `gorm:"not null;index" json:"creator_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Creator  User `gorm:"foreignKey:CreatorID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// PaidTimeOff agrega o saldo de folgas de um usuário e é o dono dos schedules.
type PaidTimeOff struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	SickDaysTaken int       `gorm:"default:0" json:"sick_days_taken"`
	PTOTaken      int       `gorm:"default:0" json:"pto_taken"`
	PTOEarned     int       `gorm:"default:0" json:"pto_earned"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Schedules []Schedule `gorm:"foreignKey:PaidTimeOffID" json:"-"`
}

type Schedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PaidTimeOffID uint      `gorm:"not null;index" json:"paid_time_off_id"`
	DateBegin     time.Time `gorm:"not null" json:"date_begin"`
	DateEnd       time.Time `gorm:"not null" json:"date_end"`
	EventDesc     string    `gorm:"size:255;not null" json:"event_desc"`
	EventName     string    `gorm:"size:255;not null" json:"event_name"`
	EventType     string    `gorm:"size:50;not null" json:"event_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	PaidTimeOff PaidTimeOff `gorm:"foreignKey:PaidTimeOffID" json:"-"`
}

// MessagesAccessibleBy restringe o conjunto de mensagens às que o usuário
// criou ou recebeu. Toda leitura de mensagens pela API móvel passa por aqui.
func MessagesAccessibleBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("creator_id = ? OR receiver_id = ?", userID, userID)
	}
}

// SchedulesAccessibleBy restringe o conjunto de schedules aos alcançáveis via
// o PaidTimeOff do usuário. Usuário sem PaidTimeOff enxerga um conjunto vazio.
func SchedulesAccessibleBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN paid_time_offs ON paid_time_offs.id = schedules.paid_time_off_id").
			Where("paid_time_offs.user_id = ?", userID)
	}
}

// AutoMigrateDB automatically migrates the schema
func AutoMigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Message{},
		&PaidTimeOff{},
		&Schedule{},
		&SystemSetting{},
	)
	return err
}
