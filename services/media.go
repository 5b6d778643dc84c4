package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Upload progress per intake session, as a whole percentage. Kept in memory
// only; progress is transient and a restart simply loses it.
var uploadProgress sync.Map

func mediaBaseURL() string {
	if url := os.Getenv("MEDIA_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

// progressReader reports a monotonically increasing percentage as the
// upload body streams through it.
type progressReader struct {
	src      io.Reader
	total    int64
	written  int64
	lastPct  int
	onChange func(percent int)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	r.written += int64(n)
	if r.total > 0 {
		pct := int(r.written * 100 / r.total)
		if pct > 100 {
			pct = 100
		}
		if pct > r.lastPct {
			r.lastPct = pct
			r.onChange(pct)
		}
	}
	return n, err
}

/*
* Open an intake session and stream the captured video into blob storage
* The key is timestamp-based like the client always named its uploads
* A failed upload marks the session failed and is fully retryable with a
* fresh upload; nothing partial survives
 */
func UploadVideo(c *gin.Context) (map[string]interface{}, error) {
	userId := c.GetString("userId")

	file, header, err := c.Request.FormFile("video")
	if err != nil {
		log.Println("Error reading video form file:", err)
		return nil, errors.New(util.NO_VIDEO_FILE)
	}
	defer file.Close()

	session := &models.IntakeSession{
		UserID: userId,
		State:  util.IntakeStateUploading,
	}
	if err := store.Intake.Create(c, session); err != nil {
		log.Println("Error from intake create:", err)
		return nil, errors.New(util.UPLOAD_FAILED)
	}
	uploadProgress.Store(session.Code, 0)

	key := fmt.Sprintf("videos/%d-medication-video.mp4", time.Now().UnixMilli())
	reader := &progressReader{
		src:   file,
		total: header.Size,
		onChange: func(percent int) {
			uploadProgress.Store(session.Code, percent)
		},
	}

	fileId, err := store.Videos.Save(c, key, reader)
	if err != nil {
		log.Println("Error during video upload:", err)
		if updateErr := store.Intake.Update(c, session.Code, bson.M{"state": util.IntakeStateFailed}); updateErr != nil {
			log.Println("Error marking intake session failed:", updateErr)
		}
		return nil, errors.New(util.UPLOAD_FAILED)
	}

	videoUrl := mediaBaseURL() + "/media/video/" + fileId
	fields := bson.M{
		"state":    util.IntakeStateUploaded,
		"videoUrl": videoUrl,
		"fileId":   fileId,
	}
	if err := store.Intake.Update(c, session.Code, fields); err != nil {
		log.Println("Error from intake update:", err)
		return nil, errors.New(util.UPLOAD_FAILED)
	}
	uploadProgress.Store(session.Code, 100)
	log.Println("Video uploaded successfully. Download URL:", videoUrl)

	return map[string]interface{}{
		"code":     session.Code,
		"videoUrl": videoUrl,
	}, nil
}

func UploadProgress(code string) int {
	if percent, ok := uploadProgress.Load(code); ok {
		return percent.(int)
	}
	return 0
}

/*
* Submit the session's stored video URL for extraction
* Success maps the structured response into a draft with quantity "1"
* Failure returns the session to uploaded, so the same URL can be
* resubmitted without recording or uploading again
 */
func ExtractMedication(c *gin.Context, data map[string]interface{}) (*models.DraftMedication, error) {
	userId := c.GetString("userId")

	code, ok := data["code"].(string)
	if !ok || code == "" {
		return nil, errors.New(util.INTAKE_NOT_FOUND)
	}

	session, err := store.Intake.Fetch(c, userId, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(util.INTAKE_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from intake fetch:", err)
		return nil, errors.New(util.INTAKE_NOT_FOUND)
	}
	if session.State != util.IntakeStateUploaded && session.State != util.IntakeStateDraftReady {
		return nil, errors.New(util.VIDEO_NOT_UPLOADED)
	}

	if err := store.Intake.Update(c, code, bson.M{"state": util.IntakeStateExtracting}); err != nil {
		log.Println("Error from intake update:", err)
	}

	extracted, err := ProcessVideo(c, session.VideoURL)
	if err != nil {
		if updateErr := store.Intake.Update(c, code, bson.M{"state": util.IntakeStateUploaded}); updateErr != nil {
			log.Println("Error restoring intake state:", updateErr)
		}
		return nil, err
	}

	draft := &models.DraftMedication{
		Name:         extracted.MedicationName,
		Dosage:       extracted.Dosage,
		Instructions: extracted.Instructions,
		Quantity:     "1",
		ReminderTime: extracted.Time,
	}
	fields := bson.M{
		"state": util.IntakeStateDraftReady,
		"draft": draft,
	}
	if err := store.Intake.Update(c, code, fields); err != nil {
		log.Println("Error from intake update:", err)
	}

	return draft, nil
}

// OpenVideo streams a stored video back out; this is the durable URL the
// extraction backend downloads.
func OpenVideo(c *gin.Context, fileId string) (io.ReadCloser, error) {
	stream, err := store.Videos.Open(c, fileId)
	if err != nil {
		log.Println("Error opening video stream:", err)
		return nil, errors.New(util.INTAKE_NOT_FOUND)
	}
	return stream, nil
}
