package store

import (
	"bitbucket.org/sotavant/chat-sync/internal/models"
)

//go:generate mockgen -destination=mock/store.go -package=mock bitbucket.org/sotavant/chat-sync/internal/store Store

// Store is the client state a chat session reads and mutates.
// Implementations are not safe for concurrent use; callers serialise access.
type Store interface {
	SetReady()
	Ready() int
	UpdateProfile(profile models.Profile)
	Profile() models.Profile

	Ingest(batch []models.Operation) int
	AdvanceRevision(batch []models.Operation) (int64, error)
	PopOperation() (models.Operation, bool)
	Revision() int64
	Operations() []models.Operation
	OperationCount() int
	MessageOperations() []models.Operation

	PushContact(c models.Category, record models.ContactRecord) error
	SyncContacts(batch models.ContactBatch) error
	Contacts(c models.Category) []models.ContactRecord
	ContactInfo() map[string]models.ContactInfo

	MediaURL() string
}

// Session owns all client state of one chat session.
type Session struct {
	ready    int
	profile  models.Profile
	log      OperationLog
	contacts ContactRegistry
	mediaURL string
}

var _ Store = (*Session)(nil)

// NewSession returns an empty session resolving media against mediaURL.
func NewSession(mediaURL string) *Session {
	return &Session{mediaURL: mediaURL}
}

func (s *Session) SetReady() { s.ready++ }

func (s *Session) Ready() int { return s.ready }

// UpdateProfile copies the displayed profile fields.
func (s *Session) UpdateProfile(profile models.Profile) {
	s.profile.DisplayName = profile.DisplayName
	s.profile.PicturePath = profile.PicturePath
	s.profile.StatusMessage = profile.StatusMessage
}

func (s *Session) Profile() models.Profile { return s.profile }

func (s *Session) Ingest(batch []models.Operation) int { return s.log.Ingest(batch) }

func (s *Session) AdvanceRevision(batch []models.Operation) (int64, error) {
	return s.log.AdvanceRevision(batch)
}

func (s *Session) PopOperation() (models.Operation, bool) { return s.log.Pop() }

func (s *Session) Revision() int64 { return s.log.Revision() }

func (s *Session) Operations() []models.Operation { return s.log.Operations() }

func (s *Session) OperationCount() int { return s.log.Len() }

func (s *Session) MessageOperations() []models.Operation { return s.log.MessageOperations() }

func (s *Session) PushContact(c models.Category, record models.ContactRecord) error {
	return s.contacts.Push(c, record)
}

func (s *Session) SyncContacts(batch models.ContactBatch) error {
	return s.contacts.SyncMany(batch)
}

func (s *Session) Contacts(c models.Category) []models.ContactRecord {
	return s.contacts.Records(c)
}

func (s *Session) ContactInfo() map[string]models.ContactInfo { return s.contacts.ContactInfo() }

func (s *Session) MediaURL() string { return s.mediaURL }
