package token

// Claim identifies the donor a request acts for. There is no real
// authentication; the identity comes from the X-User-ID header or the
// configured current user.
type Claim struct {
	Iss      string   `json:"iss"`
	Metadata Metadata `json:"metadata"`
	Admin    bool     `json:"admin"`
}

type Metadata struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	SessionID string `json:"session_id"`
}
