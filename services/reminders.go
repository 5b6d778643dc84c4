package services

import (
	"time"

	"snapill/jobs"

	"github.com/gin-gonic/gin"
)

/*
* Report the next occurrence of every reminder for the caller's records
* Goes through the normal list path, so registrations refresh as a side
* effect of answering
 */
func UpcomingReminders(c *gin.Context) ([]jobs.UpcomingReminder, error) {
	medications, err := FetchAllMedications(c)
	if err != nil {
		return nil, err
	}
	return jobs.UpcomingReminders(medications, time.Now()), nil
}
