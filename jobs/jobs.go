package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"snapill/models"
	"snapill/store"

	"github.com/robfig/cron/v3"
)

var (
	reminderCron = cron.New()

	entriesMu   sync.Mutex
	userEntries = make(map[string][]cron.EntryID)
)

func StartReminderScheduler() {
	reminderCron.Start()
	log.Println("Reminder scheduler started")
}

func StopReminderScheduler() {
	reminderCron.Stop()
}

/*
* Re-derive the cron registrations for one user from their current records
* Previous entries for that user are removed first, so refreshing on every
* list load never accumulates duplicate reminders
* A bad time or a failed registration skips that entry and keeps going
 */
func RefreshReminders(userId string, medications []models.Medication) {
	entriesMu.Lock()
	defer entriesMu.Unlock()

	for _, entryId := range userEntries[userId] {
		reminderCron.Remove(entryId)
	}
	userEntries[userId] = nil

	for _, medication := range medications {
		name := medication.Name
		for _, reminderTime := range medication.ReminderTimes {
			hour, minute, err := models.ParseReminderTime(reminderTime)
			if err != nil {
				log.Println("Skipping reminder with bad time:", reminderTime, err)
				continue
			}
			spec := fmt.Sprintf("%d %d * * *", minute, hour)
			entryId, err := reminderCron.AddFunc(spec, func() {
				deliverReminder(userId, name)
			})
			if err != nil {
				log.Println("Error registering reminder for", name, ":", err)
				continue
			}
			userEntries[userId] = append(userEntries[userId], entryId)
		}
	}
	log.Println("Registered", len(userEntries[userId]), "reminders for user", userId)
}

// Swapped out in tests.
var deliverReminder = func(userId string, medicationName string) {
	notification := &models.Notification{
		UserID: userId,
		Title:  "Medication Reminder",
		Body:   "It's time to take your medication: " + medicationName,
	}
	if err := store.Notifications.Create(context.Background(), notification); err != nil {
		log.Println("Error delivering reminder for", medicationName, ":", err)
		return
	}
	log.Println("Reminder delivered for", medicationName, "to user", userId)
}

type UpcomingReminder struct {
	Medication string    `json:"medication"`
	Time       string    `json:"time"`
	NextAt     time.Time `json:"nextAt"`
}

/*
* Compute the next occurrence for every (medication, time) pair
* A time already past today comes up tomorrow at the same hour and minute
 */
func UpcomingReminders(medications []models.Medication, now time.Time) []UpcomingReminder {
	upcoming := []UpcomingReminder{}
	for _, medication := range medications {
		for _, reminderTime := range medication.ReminderTimes {
			hour, minute, err := models.ParseReminderTime(reminderTime)
			if err != nil {
				continue
			}
			upcoming = append(upcoming, UpcomingReminder{
				Medication: medication.Name,
				Time:       models.FormatReminderTime(hour, minute),
				NextAt:     models.NextOccurrence(now, hour, minute),
			})
		}
	}
	return upcoming
}

// scheduledCount reports how many cron entries a user currently holds.
func scheduledCount(userId string) int {
	entriesMu.Lock()
	defer entriesMu.Unlock()
	return len(userEntries[userId])
}
