package credential

import "time"

// Credential is one stored service password. EncryptedPassword is a cipher
// blob opaque to everything but the cipher service.
type Credential struct {
	ID                string
	OwnerID           string
	ServiceName       string
	AccountName       string
	EncryptedPassword string
	CreatedAt         time.Time
}

// Item is the listing view of a credential. It deliberately has no field
// that could carry plaintext or ciphertext.
type Item struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"service_name"`
	AccountName string    `json:"account_name"`
	CreatedAt   time.Time `json:"created_at"`
}
