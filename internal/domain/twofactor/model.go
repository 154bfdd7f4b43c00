package twofactor

import "time"

// Secret is one stored TOTP secret. EncryptedSecret holds the cipher blob
// of the base32 seed.
type Secret struct {
	ID              string
	OwnerID         string
	ServiceName     string
	AccountName     string
	EncryptedSecret string
	CreatedAt       time.Time
}

// Item is the listing view of a secret; it never carries key material.
type Item struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"service_name"`
	AccountName string    `json:"account_name"`
	CreatedAt   time.Time `json:"created_at"`
}
