// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// MessageSender sends one SMS. Production uses Twilio; tests inject a
// fake.
type MessageSender interface {
	Send(to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func (s *twilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	params.SetFrom(s.from)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}

// ReminderService texts customers the day before their reservation.
type ReminderService struct {
	db     *gorm.DB
	sender MessageSender
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		sender: &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: accountSid,
				Password: authToken,
			}),
			from: os.Getenv("TWILIO_PHONE_NUMBER"),
		},
	}
}

// NewReminderServiceWithSender wires a custom sender, used by tests.
func NewReminderServiceWithSender(db *gorm.DB, sender MessageSender) *ReminderService {
	return &ReminderService{db: db, sender: sender}
}

// StartScheduler runs the daily reminder pass, 9 AM by default
// (REMINDER_CRON overrides the schedule).
func (s *ReminderService) StartScheduler() {
	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = "0 9 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, s.SendDailyReminders); err != nil {
		log.Printf("Invalid reminder schedule %q: %v", spec, err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders texts every customer with a scheduled reservation
// tomorrow who left a phone number and has not been reminded yet.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	now := time.Now()
	start := utils.NextDay(now)
	end := start.AddDate(0, 0, 1)

	var reservations []models.Reservation
	if err := s.db.Where(
		"status = ? AND reserved_at >= ? AND reserved_at < ? AND member_phone IS NOT NULL",
		models.ReservationScheduled, start, end,
	).Order("reserved_at ASC").Find(&reservations).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's reservations: %v", err)
		return
	}

	for _, r := range reservations {
		s.remind(r)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) remind(r models.Reservation) {
	// One reminder per reservation
	var sent int64
	s.db.Model(&models.ReminderLog{}).
		Where("reservation_id = ? AND status = ?", r.ID, "sent").
		Count(&sent)
	if sent > 0 {
		return
	}

	message := fmt.Sprintf("[타임헤어] %s님, 내일 %s 예약이 있습니다. (담당: %s)",
		r.MemberName, r.ReservedAt.Format("15:04"), r.StaffName)

	status := "sent"
	errorMsg := ""
	if err := s.sender.Send(*r.MemberPhone, message); err != nil {
		log.Printf("Failed to send reminder to %s: %v", *r.MemberPhone, err)
		status = "failed"
		errorMsg = err.Error()
	}

	reminderLog := models.ReminderLog{
		ReservationID: r.ID,
		Phone:         *r.MemberPhone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for reservation %s: %v", r.ID, err)
	}
}
