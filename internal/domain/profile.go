package domain

// Profile is the kv-backed user profile; last write wins.
type Profile struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// ImportantDate is a saved reminder (birthday, anniversary) used for
// gifting nudges.
type ImportantDate struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}
