package services

import (
	"errors"
	"log"
	"strconv"
	"strings"

	redis "snapill/config/redis"
	"snapill/jobs"
	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* The store performs no validation of its own, so every field is checked here
* before any remote call goes out
 */
func validateMedicationInput(data map[string]interface{}) (*models.Medication, error) {
	name, ok := data["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, errors.New(util.NAME_NOT_PROVIDED)
	}
	dosage, ok := data["dosage"].(string)
	if !ok || strings.TrimSpace(dosage) == "" {
		return nil, errors.New(util.DOSAGE_NOT_PROVIDED)
	}
	instructions, _ := data["instructions"].(string)

	quantity, err := parseQuantity(data["quantity"])
	if err != nil {
		return nil, err
	}

	rawTimes, ok := data["reminderTimes"].([]interface{})
	if !ok || len(rawTimes) == 0 {
		return nil, errors.New(util.REMINDER_TIMES_REQUIRED)
	}
	reminderTimes := make([]string, 0, len(rawTimes))
	for _, raw := range rawTimes {
		value, ok := raw.(string)
		if !ok {
			return nil, errors.New(util.INVALID_REMINDER_TIME)
		}
		if _, _, err := models.ParseReminderTime(value); err != nil {
			log.Println("Error parsing reminder time:", err)
			return nil, errors.New(util.INVALID_REMINDER_TIME)
		}
		reminderTimes = append(reminderTimes, strings.TrimSpace(value))
	}

	return &models.Medication{
		Name:          strings.TrimSpace(name),
		Dosage:        strings.TrimSpace(dosage),
		Instructions:  strings.TrimSpace(instructions),
		Quantity:      quantity,
		ReminderTimes: reminderTimes,
	}, nil
}

/*
* Quantity arrives as a JSON number, or as a string when the form field was
* confirmed from a draft
 */
func parseQuantity(raw interface{}) (int, error) {
	switch value := raw.(type) {
	case float64:
		if value < 0 || value != float64(int(value)) {
			return 0, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
		}
		return int(value), nil
	case string:
		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || quantity < 0 {
			return 0, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
		}
		return quantity, nil
	case nil:
		return 0, errors.New(util.QUANTITY_NOT_PROVIDED)
	default:
		return 0, errors.New(util.QUANTITY_MUST_BE_POSITIVE)
	}
}

func invalidateMedicationsCache(c *gin.Context, userId string) {
	if err := redis.DeleteCache(c, util.MedicationsKey+userId); err != nil {
		log.Println("Failed deleting medications cache:", err)
	}
}

/*
* Validate the input fields
* Tag the record with the caller's identity from the token
* Create in db and drop the cached list
 */
func CreateMedication(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	userId := c.GetString("userId")

	medication, err := validateMedicationInput(data)
	if err != nil {
		return nil, err
	}
	medication.UserID = userId

	if err := store.Medications.Create(c, medication); err != nil {
		log.Println("Error from medication create:", err)
		return nil, errors.New(util.FAILED_TO_ADD_MEDICATION)
	}
	invalidateMedicationsCache(c, userId)

	return map[string]interface{}{
		"message": "Medication added successfully",
		"id":      medication.Code,
	}, nil
}

/*
* Serve the list from cache when present, otherwise from db
* Every successful load re-derives the caller's reminder registrations
 */
func FetchAllMedications(c *gin.Context) ([]models.Medication, error) {
	userId := c.GetString("userId")
	key := util.MedicationsKey + userId

	medications := []models.Medication{}
	hit, err := redis.GetCache(c, key, &medications)
	if err != nil {
		log.Println("Error reading medications cache:", err)
	}
	if !hit {
		medications, err = store.Medications.List(c, userId)
		if err != nil {
			log.Println("Error from medications list:", err)
			return nil, errors.New(util.FAILED_TO_LOAD_MEDICATIONS)
		}
		if err := redis.SetCache(c, key, medications); err != nil {
			log.Println("Error from setCache:", err)
		}
	}

	jobs.RefreshReminders(userId, medications)
	return medications, nil
}

func FetchMedicationByCode(c *gin.Context, code string) (*models.Medication, error) {
	userId := c.GetString("userId")
	medication, err := store.Medications.FetchByCode(c, userId, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(util.MEDICATION_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from FetchByCode:", err)
		return nil, errors.New(util.FAILED_TO_LOAD_MEDICATIONS)
	}
	return medication, nil
}

/*
* Full-field replace of an owned record
* The same validation as create runs first, then the cache entry is dropped
 */
func UpdateMedication(c *gin.Context, code string, data map[string]interface{}) (string, error) {
	userId := c.GetString("userId")

	medication, err := validateMedicationInput(data)
	if err != nil {
		return "", err
	}

	fields := bson.M{
		"name":          medication.Name,
		"dosage":        medication.Dosage,
		"instructions":  medication.Instructions,
		"quantity":      medication.Quantity,
		"reminderTimes": medication.ReminderTimes,
	}
	err = store.Medications.Update(c, userId, code, fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.New(util.MEDICATION_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from medication update:", err)
		return "", errors.New(util.FAILED_TO_UPDATE_MEDICATION)
	}
	invalidateMedicationsCache(c, userId)

	return "Medication updated successfully", nil
}

/*
* Single-field quantity replace
* Negative values are rejected before anything goes to db
 */
func UpdateQuantity(c *gin.Context, code string, data map[string]interface{}) (string, error) {
	userId := c.GetString("userId")

	quantity, err := parseQuantity(data["quantity"])
	if err != nil {
		return "", err
	}

	err = store.Medications.UpdateQuantity(c, userId, code, quantity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.New(util.MEDICATION_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from updateQuantity:", err)
		return "", errors.New(util.FAILED_TO_UPDATE_MEDICATION)
	}
	invalidateMedicationsCache(c, userId)

	return "Quantity updated successfully", nil
}

/*
* Decrement the quantity by one for a dose taken
* A decrement that would go negative leaves the record untouched and tells
* the caller there are no pills left
 */
func TakeDose(c *gin.Context, code string) (map[string]interface{}, error) {
	userId := c.GetString("userId")

	medication, err := store.Medications.FetchByCode(c, userId, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(util.MEDICATION_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from FetchByCode:", err)
		return nil, errors.New(util.FAILED_TO_UPDATE_MEDICATION)
	}

	newQuantity := medication.Quantity - 1
	if newQuantity < 0 {
		return nil, errors.New(util.NO_PILLS_LEFT)
	}

	if err := store.Medications.UpdateQuantity(c, userId, code, newQuantity); err != nil {
		log.Println("Error from updateQuantity:", err)
		return nil, errors.New(util.FAILED_TO_UPDATE_MEDICATION)
	}
	invalidateMedicationsCache(c, userId)

	return map[string]interface{}{
		"message":  "You took a pill of " + medication.Name,
		"quantity": newQuantity,
	}, nil
}

/*
* Delete an owned record
* Deleting a code that is already gone is a no-op and still reports success
 */
func DeleteMedication(c *gin.Context, code string) (string, error) {
	userId := c.GetString("userId")

	if err := store.Medications.Delete(c, userId, code); err != nil {
		log.Println("Error from medication delete:", err)
		return "", errors.New(util.FAILED_TO_DELETE_MEDICATION)
	}
	invalidateMedicationsCache(c, userId)

	return "Medication deleted successfully", nil
}
