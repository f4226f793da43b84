package store

type Settings struct {
	Sensitivity   int      `json:"sensitivity"`
	BanWords      []string `json:"ban_words"`
	AutoDelete    bool     `json:"auto_delete"`
	WarnBeforeBan int      `json:"warn_before_ban"`
}

type UserRecord struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Messages  int64  `json:"messages"`
	Warnings  int    `json:"warnings"`
}

type Stats struct {
	MessagesChecked int64 `json:"messages_checked"`
	ViolationsFound int64 `json:"violations_found"`
	DeletedMessages int64 `json:"deleted_messages"`
	BannedUsers     int64 `json:"banned_users"`
}

// document - the on-disk layout. All three keys must be present for a stored
// file to be considered valid.
type document struct {
	Settings *Settings              `json:"settings"`
	Users    map[string]*UserRecord `json:"users"`
	Stats    *Stats                 `json:"stats"`
}

func defaultDocument() *document {
	return &document{
		Settings: &Settings{
			Sensitivity:   70,
			BanWords:      []string{"buy now", "free money", "http://", "t.me/", "click here"},
			AutoDelete:    true,
			WarnBeforeBan: 3,
		},
		Users: make(map[string]*UserRecord),
		Stats: &Stats{},
	}
}
