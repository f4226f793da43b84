package store

import (
	"strings"
	"sync"
)

// DataStore owns the moderation settings, per-user records and aggregate stats. All
// mutation happens through its methods, under a single lock, and callers persist the
// result with Save. There are no ambient globals.
type DataStore struct {
	mu   sync.Mutex
	path string
	doc  *document
}

func (s *DataStore) Sensitivity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings.Sensitivity
}

func (s *DataStore) SetSensitivity(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings.Sensitivity = level
}

func (s *DataStore) AutoDelete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings.AutoDelete
}

func (s *DataStore) SetAutoDelete(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings.AutoDelete = enabled
}

func (s *DataStore) WarnBeforeBan() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings.WarnBeforeBan
}

func (s *DataStore) SetWarnBeforeBan(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings.WarnBeforeBan = count
}

// BanWords - returns a copy of the ban word list.
func (s *DataStore) BanWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := make([]string, len(s.doc.Settings.BanWords))
	copy(words, s.doc.Settings.BanWords)
	return words
}

// AddBanWord - appends a case-folded word to the ban list. Returns false if the word is
// already present (check-before-append keeps the list free of duplicates).
func (s *DataStore) AddBanWord(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.doc.Settings.BanWords {
		if existing == word {
			return false
		}
	}
	s.doc.Settings.BanWords = append(s.doc.Settings.BanWords, word)
	return true
}

// RemoveBanWord - removes a word from the ban list. Returns false if it wasn't there.
func (s *DataStore) RemoveBanWord(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.Settings.BanWords {
		if existing == word {
			s.doc.Settings.BanWords = append(s.doc.Settings.BanWords[:i], s.doc.Settings.BanWords[i+1:]...)
			return true
		}
	}
	return false
}

// Settings - returns a copy of the current settings for display purposes.
func (s *DataStore) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := *s.doc.Settings
	settings.BanWords = make([]string, len(s.doc.Settings.BanWords))
	copy(settings.BanWords, s.doc.Settings.BanWords)
	return settings
}

// TouchUser - creates the user record on first sighting and increments its message
// counter. Display identity is captured at creation time only; later sightings don't
// overwrite it.
func (s *DataStore) TouchUser(userId string, username string, firstName string, lastName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.doc.Users[userId]
	if !ok {
		user = &UserRecord{
			Username:  username,
			FirstName: firstName,
			LastName:  lastName,
		}
		s.doc.Users[userId] = user
	}
	user.Messages++
}

// AddWarning - increments the user's warning counter and returns the new value. Warnings
// never decay and are global across chats.
func (s *DataStore) AddWarning(userId string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.doc.Users[userId]
	if !ok {
		user = &UserRecord{}
		s.doc.Users[userId] = user
	}
	user.Warnings++
	return user.Warnings
}

// User - returns a copy of the record for the given user ID.
func (s *DataStore) User(userId string) (UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.doc.Users[userId]
	if !ok {
		return UserRecord{}, false
	}
	return *user, true
}

// FindUser - looks a user up by ID or by username (case-insensitive).
func (s *DataStore) FindUser(query string) (string, UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userId, user := range s.doc.Users {
		if userId == query || (user.Username != "" && strings.EqualFold(user.Username, query)) {
			return userId, *user, true
		}
	}
	return "", UserRecord{}, false
}

func (s *DataStore) IncMessagesChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Stats.MessagesChecked++
}

func (s *DataStore) IncViolationsFound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Stats.ViolationsFound++
}

func (s *DataStore) IncDeletedMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Stats.DeletedMessages++
}

func (s *DataStore) IncBannedUsers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Stats.BannedUsers++
}

// Stats - returns a copy of the aggregate counters.
func (s *DataStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.doc.Stats
}
