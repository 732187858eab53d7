package services

import (
	"errors"
	"testing"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

type stubWeightLogRepository struct {
	entries   []models.WeightEntry
	createErr error
	nextID    uint
}

func (stub *stubWeightLogRepository) ListByUser(uint) ([]models.WeightEntry, error) {
	result := make([]models.WeightEntry, len(stub.entries))
	copy(result, stub.entries)
	return result, nil
}

func (stub *stubWeightLogRepository) ListByUserRange(_ uint, fromStart time.Time, toEnd time.Time) ([]models.WeightEntry, error) {
	result := make([]models.WeightEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.MeasuredAt.Before(fromStart) || !entry.MeasuredAt.Before(toEnd) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (stub *stubWeightLogRepository) FindByUserAndDayRange(_ uint, dayStart time.Time, dayEnd time.Time) (models.WeightEntry, bool, error) {
	for _, entry := range stub.entries {
		if !entry.MeasuredAt.Before(dayStart) && entry.MeasuredAt.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.WeightEntry{}, false, nil
}

func (stub *stubWeightLogRepository) FindByIDForUser(entryID uint, _ uint) (models.WeightEntry, bool, error) {
	for _, entry := range stub.entries {
		if entry.ID == entryID {
			return entry, true, nil
		}
	}
	return models.WeightEntry{}, false, nil
}

func (stub *stubWeightLogRepository) FindLatestForUser(uint) (models.WeightEntry, bool, error) {
	if len(stub.entries) == 0 {
		return models.WeightEntry{}, false, nil
	}
	latest := stub.entries[0]
	for _, entry := range stub.entries[1:] {
		if entry.MeasuredAt.After(latest.MeasuredAt) {
			latest = entry
		}
	}
	return latest, true, nil
}

func (stub *stubWeightLogRepository) FindEarliestForUser(uint) (models.WeightEntry, bool, error) {
	if len(stub.entries) == 0 {
		return models.WeightEntry{}, false, nil
	}
	earliest := stub.entries[0]
	for _, entry := range stub.entries[1:] {
		if entry.MeasuredAt.Before(earliest.MeasuredAt) {
			earliest = entry
		}
	}
	return earliest, true, nil
}

func (stub *stubWeightLogRepository) Create(entry *models.WeightEntry) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.nextID++
	entry.ID = stub.nextID
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubWeightLogRepository) Save(entry *models.WeightEntry) error {
	for index := range stub.entries {
		if stub.entries[index].ID == entry.ID {
			stub.entries[index] = *entry
			return nil
		}
	}
	return errors.New("entry not found")
}

func (stub *stubWeightLogRepository) DeleteByIDForUser(entryID uint, _ uint) error {
	kept := stub.entries[:0]
	for _, entry := range stub.entries {
		if entry.ID != entryID {
			kept = append(kept, entry)
		}
	}
	stub.entries = kept
	return nil
}

type stubWeightUserRepository struct {
	user    models.User
	updates map[string]any
}

func (stub *stubWeightUserRepository) FindByID(uint) (models.User, error) {
	return stub.user, nil
}

func (stub *stubWeightUserRepository) UpdateByID(_ uint, updates map[string]any) error {
	if stub.updates == nil {
		stub.updates = make(map[string]any)
	}
	for key, value := range updates {
		stub.updates[key] = value
	}
	return nil
}

func TestRecordEntryRejectsOutOfRangeWeight(t *testing.T) {
	service := NewWeightService(&stubWeightLogRepository{}, &stubWeightUserRepository{})

	_, err := service.RecordEntry(1, WeightEntryInput{MeasuredAt: time.Now(), WeightKg: 20}, time.UTC)
	if !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected ErrWeightOutOfRange, got %v", err)
	}

	_, err = service.RecordEntry(1, WeightEntryInput{MeasuredAt: time.Now(), WeightKg: 320}, time.UTC)
	if !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected ErrWeightOutOfRange, got %v", err)
	}
}

func TestRecordEntryRejectsSecondEntrySameDay(t *testing.T) {
	logs := &stubWeightLogRepository{}
	service := NewWeightService(logs, &stubWeightUserRepository{})
	day := time.Date(2026, 8, 27, 7, 0, 0, 0, time.UTC)

	if _, err := service.RecordEntry(1, WeightEntryInput{MeasuredAt: day, WeightKg: 80}, time.UTC); err != nil {
		t.Fatalf("first entry: %v", err)
	}

	_, err := service.RecordEntry(1, WeightEntryInput{MeasuredAt: day.Add(9 * time.Hour), WeightKg: 79.5}, time.UTC)
	if !errors.Is(err, ErrWeightEntryExists) {
		t.Fatalf("expected ErrWeightEntryExists, got %v", err)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("expected one stored entry, got %d", len(logs.entries))
	}
}

func TestRecordEntrySyncsCurrentWeight(t *testing.T) {
	logs := &stubWeightLogRepository{}
	users := &stubWeightUserRepository{}
	service := NewWeightService(logs, users)

	entry, err := service.RecordEntry(1, WeightEntryInput{
		MeasuredAt: time.Date(2026, 8, 27, 7, 0, 0, 0, time.UTC),
		WeightKg:   80.4,
		Notes:      "  nach dem Aufstehen  ",
	}, time.UTC)
	if err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	if entry.Notes != "nach dem Aufstehen" {
		t.Fatalf("expected trimmed notes, got %q", entry.Notes)
	}
	if entry.MeasuredAt.Hour() != 0 {
		t.Fatal("expected measured date normalized to midnight")
	}
	if users.updates["current_weight_kg"] != 80.4 {
		t.Fatalf("expected current weight synced to 80.4, got %v", users.updates["current_weight_kg"])
	}
}

func TestUpdateEntryEditsWeightAndNotes(t *testing.T) {
	logs := &stubWeightLogRepository{}
	users := &stubWeightUserRepository{}
	service := NewWeightService(logs, users)

	created, err := service.RecordEntry(1, WeightEntryInput{
		MeasuredAt: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		WeightKg:   80,
	}, time.UTC)
	if err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	notes := "korrigiert"
	updated, err := service.UpdateEntry(created.ID, 1, 79.2, &notes)
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if updated.WeightKg != 79.2 || updated.Notes != "korrigiert" {
		t.Fatalf("unexpected entry after update: %#v", updated)
	}
	if users.updates["current_weight_kg"] != 79.2 {
		t.Fatalf("expected synced weight 79.2, got %v", users.updates["current_weight_kg"])
	}
}

func TestUpdateEntryMissing(t *testing.T) {
	service := NewWeightService(&stubWeightLogRepository{}, &stubWeightUserRepository{})
	if _, err := service.UpdateEntry(42, 1, 80, nil); !errors.Is(err, ErrWeightEntryMissing) {
		t.Fatalf("expected ErrWeightEntryMissing, got %v", err)
	}
}

func TestDeleteEntryClearsCurrentWeightWhenLogEmpties(t *testing.T) {
	logs := &stubWeightLogRepository{}
	users := &stubWeightUserRepository{}
	service := NewWeightService(logs, users)

	created, err := service.RecordEntry(1, WeightEntryInput{
		MeasuredAt: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		WeightKg:   80,
	}, time.UTC)
	if err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	if err := service.DeleteEntry(created.ID, 1); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if len(logs.entries) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(logs.entries))
	}
	if users.updates["current_weight_kg"] != nil {
		t.Fatalf("expected cleared current weight, got %v", users.updates["current_weight_kg"])
	}
}

func TestDeleteEntryMissing(t *testing.T) {
	service := NewWeightService(&stubWeightLogRepository{}, &stubWeightUserRepository{})
	if err := service.DeleteEntry(7, 1); !errors.Is(err, ErrWeightEntryMissing) {
		t.Fatalf("expected ErrWeightEntryMissing, got %v", err)
	}
}
