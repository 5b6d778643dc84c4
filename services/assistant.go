package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

// The AI backend answers medication questions, compatibility checks and
// video extraction. Its internals are not ours; we only speak its three
// JSON endpoints.
var aiClient = &http.Client{Timeout: 90 * time.Second}

func aiBackendURL() string {
	if url := os.Getenv("AI_BACKEND_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "https://snapill-backend-b37ba101e223.herokuapp.com"
}

type assistantRequest struct {
	Message string `json:"message"`
}

type assistantResponse struct {
	Response string `json:"response"`
}

type processVideoRequest struct {
	VideoURL string `json:"videoUrl"`
}

// MedicationData is the structured extraction result for one video.
type MedicationData struct {
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
	Time           string `json:"time"`
}

type processVideoResponse struct {
	MedicationData MedicationData `json:"medication_data"`
}

func postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, aiBackendURL()+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := aiClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("ai backend returned status " + resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

/*
* Free-text question about a medication
* The backend's answer comes back verbatim
 */
func Chat(c *gin.Context, data map[string]interface{}) (string, error) {
	message, ok := data["message"].(string)
	if !ok || strings.TrimSpace(message) == "" {
		return "", errors.New(util.MESSAGE_NOT_PROVIDED)
	}

	var result assistantResponse
	if err := postJSON(c, "/chat", assistantRequest{Message: message}, &result); err != nil {
		log.Println("Error from chat endpoint:", err)
		return "", errors.New(util.CHAT_FAILED)
	}
	return result.Response, nil
}

/*
* Build the compatibility question from the caller's current medication names
* The backend returns a markdown overview of incompatibilities
 */
func Vanguard(c *gin.Context) (string, error) {
	userId := c.GetString("userId")

	medications, err := store.Medications.List(c, userId)
	if err != nil {
		log.Println("Error from medications list:", err)
		return "", errors.New(util.FAILED_TO_LOAD_MEDICATIONS)
	}
	if len(medications) == 0 {
		return "", errors.New(util.NO_MEDICATIONS_TO_CHECK)
	}

	names := make([]string, 0, len(medications))
	for _, medication := range medications {
		names = append(names, medication.Name)
	}
	message := "Check for incompatibilities between the following medications: " + strings.Join(names, ", ")

	var result assistantResponse
	if err := postJSON(c, "/vanguard", assistantRequest{Message: message}, &result); err != nil {
		log.Println("Error from vanguard endpoint:", err)
		return "", errors.New(util.VANGUARD_FAILED)
	}
	return result.Response, nil
}

/*
* Submit the durable video URL for extraction
* A non-success status is an extraction failure the caller can retry
 */
func ProcessVideo(ctx context.Context, videoUrl string) (*MedicationData, error) {
	var result processVideoResponse
	if err := postJSON(ctx, "/process-video", processVideoRequest{VideoURL: videoUrl}, &result); err != nil {
		log.Println("Error from process-video endpoint:", err)
		return nil, errors.New(util.EXTRACTION_FAILED)
	}
	return &result.MedicationData, nil
}
