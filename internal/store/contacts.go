package store

import (
	"fmt"

	"bitbucket.org/sotavant/chat-sync/internal/models"
)

// ContactRegistry keeps one append-only sequence of records per category.
// Records are never deduplicated.
type ContactRegistry struct {
	lists [len(models.Categories)][]models.ContactRecord
}

func slot(c models.Category) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("push contact into %s: %w", c, models.ErrInvalidArgument)
	}
	return int(c - models.CategoryContact), nil
}

// Push appends record to the sequence of category c.
func (r *ContactRegistry) Push(c models.Category, record models.ContactRecord) error {
	i, err := slot(c)
	if err != nil {
		return err
	}
	r.lists[i] = append(r.lists[i], record)
	return nil
}

// SyncMany pushes every record of the batch in order.
// The batch is validated up front, so a rejected batch changes nothing.
func (r *ContactRegistry) SyncMany(batch models.ContactBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	for _, record := range batch.Records {
		if err := r.Push(batch.Category, record); err != nil {
			return err
		}
	}
	return nil
}

// Records returns a copy of the sequence of category c, nil for unknown ones.
func (r *ContactRegistry) Records(c models.Category) []models.ContactRecord {
	i, err := slot(c)
	if err != nil {
		return nil
	}
	out := make([]models.ContactRecord, len(r.lists[i]))
	copy(out, r.lists[i])
	return out
}

// ContactInfo maps every direct contact's mid to what a chat list shows for it.
// It is rebuilt on every call; a mid seen twice keeps its last record.
func (r *ContactRegistry) ContactInfo() map[string]models.ContactInfo {
	i, _ := slot(models.CategoryContact)
	contacts := r.lists[i]
	layout := make(map[string]models.ContactInfo, len(contacts))
	for _, contact := range contacts {
		layout[contact.Mid] = models.ContactInfo{
			PicturePath: contact.PicturePath,
			DisplayName: contact.DisplayName,
		}
	}
	return layout
}
