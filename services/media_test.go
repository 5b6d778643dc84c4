package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func useIntakeStore(t *testing.T, mock store.IntakeStore) {
	t.Helper()
	original := store.Intake
	store.Intake = mock
	t.Cleanup(func() { store.Intake = original })
}

func useBlobStore(t *testing.T, mock store.BlobStore) {
	t.Helper()
	original := store.Videos
	store.Videos = mock
	t.Cleanup(func() { store.Videos = original })
}

func uploadContext(t *testing.T, userId string, payload []byte) *gin.Context {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("video", "medication-video.mp4")
	assert.NoError(t, err)
	_, err = part.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/media/upload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	c.Set("userId", userId)
	return c
}

func TestUploadVideoStoresTheStreamAndReturnsTheDownloadURL(t *testing.T) {
	intake := &memIntakeStore{}
	blobs := &mockBlobStore{}
	useIntakeStore(t, intake)
	useBlobStore(t, blobs)
	t.Setenv("MEDIA_BASE_URL", "http://api.test")

	c := uploadContext(t, "u1", bytes.Repeat([]byte("frame"), 2048))

	result, err := UploadVideo(c)
	assert.NoError(t, err)
	assert.Equal(t, "intake-1", result["code"])
	assert.Equal(t, "http://api.test/media/video/file-1", result["videoUrl"])

	assert.True(t, strings.HasPrefix(blobs.savedKey, "videos/"))
	assert.True(t, strings.HasSuffix(blobs.savedKey, "-medication-video.mp4"))

	assert.Equal(t, []string{util.IntakeStateUploading, util.IntakeStateUploaded}, intake.states)
	assert.Equal(t, "http://api.test/media/video/file-1", intake.session.VideoURL)
	assert.Equal(t, "file-1", intake.session.FileID)
	assert.Equal(t, 100, UploadProgress("intake-1"))
}

func TestUploadVideoRequiresAFile(t *testing.T) {
	useIntakeStore(t, &memIntakeStore{})
	useBlobStore(t, &mockBlobStore{})

	c := newTestContext("u1")
	c.Request = httptest.NewRequest(http.MethodPost, "/media/upload", nil)

	_, err := UploadVideo(c)
	assert.EqualError(t, err, util.NO_VIDEO_FILE)
}

func TestUploadFailureMarksTheSessionFailed(t *testing.T) {
	intake := &memIntakeStore{}
	blobs := &mockBlobStore{
		SaveFunc: func(ctx context.Context, key string, src io.Reader) (string, error) {
			io.Copy(io.Discard, src)
			return "", io.ErrUnexpectedEOF
		},
	}
	useIntakeStore(t, intake)
	useBlobStore(t, blobs)

	c := uploadContext(t, "u1", []byte("frame"))

	_, err := UploadVideo(c)
	assert.EqualError(t, err, util.UPLOAD_FAILED)
	assert.Equal(t, []string{util.IntakeStateUploading, util.IntakeStateFailed}, intake.states)
}

func TestExtractMedicationProducesADraft(t *testing.T) {
	intake := &memIntakeStore{session: &models.IntakeSession{
		Code:     "intake-1",
		UserID:   "u1",
		State:    util.IntakeStateUploaded,
		VideoURL: "http://api.test/media/video/file-1",
	}}
	useIntakeStore(t, intake)

	var received processVideoRequest
	fakeAIBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/process-video", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(processVideoResponse{MedicationData: MedicationData{
			MedicationName: "Ibuprofen",
			Dosage:         "200mg",
			Instructions:   "Take with food",
			Time:           "20:00",
		}})
	})

	draft, err := ExtractMedication(newTestContext("u1"), map[string]interface{}{"code": "intake-1"})
	assert.NoError(t, err)
	assert.Equal(t, "Ibuprofen", draft.Name)
	assert.Equal(t, "200mg", draft.Dosage)
	assert.Equal(t, "Take with food", draft.Instructions)
	assert.Equal(t, "1", draft.Quantity)
	assert.Equal(t, "20:00", draft.ReminderTime)

	assert.Equal(t, "http://api.test/media/video/file-1", received.VideoURL)
	assert.Equal(t, []string{util.IntakeStateExtracting, util.IntakeStateDraftReady}, intake.states)
	assert.Equal(t, draft, intake.session.Draft)
}

func TestExtractFailureReturnsTheSessionToUploaded(t *testing.T) {
	intake := &memIntakeStore{session: &models.IntakeSession{
		Code:     "intake-1",
		UserID:   "u1",
		State:    util.IntakeStateUploaded,
		VideoURL: "http://api.test/media/video/file-1",
	}}
	useIntakeStore(t, intake)

	fakeAIBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := ExtractMedication(newTestContext("u1"), map[string]interface{}{"code": "intake-1"})
	assert.EqualError(t, err, util.EXTRACTION_FAILED)
	assert.Equal(t, []string{util.IntakeStateExtracting, util.IntakeStateUploaded}, intake.states)
	assert.Nil(t, intake.session.Draft)
}

func TestExtractCanBeResubmittedAfterAFailure(t *testing.T) {
	intake := &memIntakeStore{session: &models.IntakeSession{
		Code:     "intake-1",
		UserID:   "u1",
		State:    util.IntakeStateUploaded,
		VideoURL: "http://api.test/media/video/file-1",
	}}
	useIntakeStore(t, intake)

	attempts := 0
	fakeAIBackend(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(processVideoResponse{MedicationData: MedicationData{
			MedicationName: "Ibuprofen",
		}})
	})

	c := newTestContext("u1")
	_, err := ExtractMedication(c, map[string]interface{}{"code": "intake-1"})
	assert.Error(t, err)

	draft, err := ExtractMedication(c, map[string]interface{}{"code": "intake-1"})
	assert.NoError(t, err)
	assert.Equal(t, "Ibuprofen", draft.Name)
	assert.Equal(t, 2, attempts, "the stored URL is reused, no new upload happens")
}

func TestExtractUnknownSession(t *testing.T) {
	useIntakeStore(t, &memIntakeStore{})

	_, err := ExtractMedication(newTestContext("u1"), map[string]interface{}{"code": "missing"})
	assert.EqualError(t, err, util.INTAKE_NOT_FOUND)
}

func TestExtractRejectsAnotherUsersSession(t *testing.T) {
	intake := &memIntakeStore{session: &models.IntakeSession{
		Code:     "intake-1",
		UserID:   "u1",
		State:    util.IntakeStateUploaded,
		VideoURL: "http://api.test/media/video/file-1",
	}}
	useIntakeStore(t, intake)

	_, err := ExtractMedication(newTestContext("u2"), map[string]interface{}{"code": "intake-1"})
	assert.EqualError(t, err, util.INTAKE_NOT_FOUND)
}

func TestExtractBeforeUploadFinishes(t *testing.T) {
	intake := &memIntakeStore{session: &models.IntakeSession{
		Code:   "intake-1",
		UserID: "u1",
		State:  util.IntakeStateUploading,
	}}
	useIntakeStore(t, intake)

	_, err := ExtractMedication(newTestContext("u1"), map[string]interface{}{"code": "intake-1"})
	assert.EqualError(t, err, util.VIDEO_NOT_UPLOADED)
}
