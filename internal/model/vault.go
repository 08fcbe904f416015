package model

import "time"

// VaultEntry represents a saved site credential as returned by the vault API.
type VaultEntry struct {
	ID       string `json:"_id"`
	SiteName string `json:"siteName"`
	Link     string `json:"link"`
	Password string `json:"password"`
}

// Draft represents an unsaved vault entry. It is also the body of a save request.
type Draft struct {
	SiteName string `json:"siteName"`
	Link     string `json:"link"`
	Password string `json:"password"`
}

// IsEmpty reports whether every field of the draft is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// StoredEntry represents a vault entry row as kept by the server-side store.
// The password is sealed before it reaches the store.
type StoredEntry struct {
	Seq            int64
	ID             string
	UserID         string
	SiteName       string
	Link           string
	SealedPassword []byte
	CreatedAt      time.Time
}

// SaveResponse represents the server reply to a successful save.
type SaveResponse struct {
	Message string `json:"message"`
	ID      string `json:"_id"`
}
