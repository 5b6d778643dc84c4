package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"snapill/models"
	"snapill/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time checks that the mocks satisfy the store contracts
var _ store.MedicationStore = (*memMedicationStore)(nil)
var _ store.UserStore = (*mockUserStore)(nil)
var _ store.IntakeStore = (*memIntakeStore)(nil)
var _ store.NotificationStore = (*memNotificationStore)(nil)
var _ store.BlobStore = (*mockBlobStore)(nil)

// memMedicationStore is an in-memory MedicationStore with the same
// owner-scoping behavior as the real adapter.
type memMedicationStore struct {
	mu      sync.Mutex
	nextId  int
	records []models.Medication
}

func (m *memMedicationStore) List(ctx context.Context, userId string) ([]models.Medication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.Medication{}
	for _, record := range m.records {
		if record.UserID == userId {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (m *memMedicationStore) FetchByCode(ctx context.Context, userId string, code string) (*models.Medication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records {
		if record.UserID == userId && record.Code == code {
			found := record
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memMedicationStore) Create(ctx context.Context, medication *models.Medication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if medication.Code == "" {
		m.nextId++
		medication.Code = fmt.Sprintf("med-%d", m.nextId)
	}
	m.records = append(m.records, *medication)
	return nil
}

func (m *memMedicationStore) Update(ctx context.Context, userId string, code string, fields bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, record := range m.records {
		if record.UserID != userId || record.Code != code {
			continue
		}
		if name, ok := fields["name"].(string); ok {
			record.Name = name
		}
		if dosage, ok := fields["dosage"].(string); ok {
			record.Dosage = dosage
		}
		if instructions, ok := fields["instructions"].(string); ok {
			record.Instructions = instructions
		}
		if quantity, ok := fields["quantity"].(int); ok {
			record.Quantity = quantity
		}
		if reminderTimes, ok := fields["reminderTimes"].([]string); ok {
			record.ReminderTimes = reminderTimes
		}
		m.records[i] = record
		return nil
	}
	return mongo.ErrNoDocuments
}

func (m *memMedicationStore) UpdateQuantity(ctx context.Context, userId string, code string, quantity int) error {
	return m.Update(ctx, userId, code, bson.M{"quantity": quantity})
}

func (m *memMedicationStore) Delete(ctx context.Context, userId string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, record := range m.records {
		if record.UserID == userId && record.Code == code {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// mockUserStore is a function-field mock of UserStore.
type mockUserStore struct {
	FetchByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	CreateFunc       func(ctx context.Context, user *models.User) error
}

func (m *mockUserStore) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FetchByEmailFunc != nil {
		return m.FetchByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	if user.Code == "" {
		user.Code = "user-1"
	}
	return nil
}

// memIntakeStore records every state the session passes through.
type memIntakeStore struct {
	mu       sync.Mutex
	session  *models.IntakeSession
	states   []string
	failNext bool
}

func (m *memIntakeStore) Create(ctx context.Context, session *models.IntakeSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("intake store down")
	}
	if session.Code == "" {
		session.Code = "intake-1"
	}
	copied := *session
	m.session = &copied
	m.states = append(m.states, session.State)
	return nil
}

func (m *memIntakeStore) Fetch(ctx context.Context, userId string, code string) (*models.IntakeSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.UserID != userId || m.session.Code != code {
		return nil, mongo.ErrNoDocuments
	}
	found := *m.session
	return &found, nil
}

func (m *memIntakeStore) Update(ctx context.Context, code string, fields bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.Code != code {
		return mongo.ErrNoDocuments
	}
	if state, ok := fields["state"].(string); ok {
		m.session.State = state
		m.states = append(m.states, state)
	}
	if videoUrl, ok := fields["videoUrl"].(string); ok {
		m.session.VideoURL = videoUrl
	}
	if fileId, ok := fields["fileId"].(string); ok {
		m.session.FileID = fileId
	}
	if draft, ok := fields["draft"].(*models.DraftMedication); ok {
		m.session.Draft = draft
	}
	return nil
}

type memNotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (m *memNotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if notification.Code == "" {
		notification.Code = fmt.Sprintf("notification-%d", len(m.notifications)+1)
	}
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *memNotificationStore) ListByUser(ctx context.Context, userId string) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.Notification{}
	for _, notification := range m.notifications {
		if notification.UserID == userId {
			matched = append(matched, notification)
		}
	}
	return matched, nil
}

func (m *memNotificationStore) MarkRead(ctx context.Context, userId string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, notification := range m.notifications {
		if notification.UserID == userId && notification.Code == code {
			m.notifications[i].Read = true
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// mockBlobStore drains the source so upload progress advances, then hands
// back a fixed file id.
type mockBlobStore struct {
	SaveFunc func(ctx context.Context, key string, src io.Reader) (string, error)
	savedKey string
}

func (m *mockBlobStore) Save(ctx context.Context, key string, src io.Reader) (string, error) {
	m.savedKey = key
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key, src)
	}
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}
	return "file-1", nil
}

func (m *mockBlobStore) Open(ctx context.Context, fileId string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented in mock")
}
