package entity

// User is a chat platform account taking part in a command.
type User struct {
	ID  string `json:"id"`
	Bot bool   `json:"bot,omitempty"`
}
