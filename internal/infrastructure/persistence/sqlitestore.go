package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickdesk/internal/infrastructure/persistence/models"
)

// StateDocument is one named JSON document of the snapshot, stored as
// a row in a key-value table.
type StateDocument struct {
	Key       string         `gorm:"primaryKey;size:50"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (StateDocument) TableName() string {
	return "state_documents"
}

// SQLiteStore persists the snapshot in a SQLite key-value table. All
// four documents are written in a single transaction.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&StateDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*Snapshot, error) {
	var docs []StateDocument
	if err := s.db.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to load state documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	byKey := make(map[string]string, len(docs))
	for _, d := range docs {
		byKey[d.Key] = string(d.Value)
	}

	snap := &Snapshot{}
	if raw, ok := byKey[KeyCurrentUser]; ok && raw != "null" {
		var u models.UserRecord
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, fmt.Errorf("failed to decode current user: %w", err)
		}
		snap.CurrentUser = &u
	}
	if err := decodeDoc(byKey, KeyUsers, &snap.Users); err != nil {
		return nil, err
	}
	if err := decodeDoc(byKey, KeyTickets, &snap.Tickets); err != nil {
		return nil, err
	}
	if err := decodeDoc(byKey, KeyCategories, &snap.Categories); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap *Snapshot) error {
	docs, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range docs {
			doc := StateDocument{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now().UTC()}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&doc).Error; err != nil {
				return fmt.Errorf("failed to save document %s: %w", key, err)
			}
		}
		return nil
	})
}

func decodeDoc(byKey map[string]string, key string, out any) error {
	raw, ok := byKey[key]
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

func encodeSnapshot(snap *Snapshot) (map[string]string, error) {
	docs := make(map[string]string, 4)
	for key, v := range map[string]any{
		KeyCurrentUser: snap.CurrentUser,
		KeyUsers:       snap.Users,
		KeyTickets:     snap.Tickets,
		KeyCategories:  snap.Categories,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode document %s: %w", key, err)
		}
		docs[key] = string(raw)
	}
	return docs, nil
}
