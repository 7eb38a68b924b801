package domain

import "time"

// Address is a postal address in the three parts the users table keeps.
type Address struct {
	FirstLine string `json:"firstLine"`
	LastLine  string `json:"lastLine"`
	Postcode  string `json:"postcode"`
}

// User is a registered traveller. ID is assigned by the store on insert.
type User struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
	Address     Address    `json:"address"`
	Billing     Address    `json:"billing"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
