package client

// Identity is the logged-in user as cached locally, so the UI can render
// name and role without a round trip.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is the client-side view of an authenticated session. An empty
// AccessToken means logged out.
type Session struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         Identity `json:"user"`
}

func (s Session) LoggedIn() bool {
	return s.AccessToken != ""
}

func loadSession(store *Store) Session {
	var sess Session
	store.Get(keyAccessToken, &sess.AccessToken)
	store.Get(keyRefreshToken, &sess.RefreshToken)
	store.Get(keyUser, &sess.User)
	return sess
}

func saveSession(store *Store, sess Session) {
	store.Set(keyAccessToken, sess.AccessToken)
	store.Set(keyRefreshToken, sess.RefreshToken)
	store.Set(keyUser, sess.User)
}

func clearSession(store *Store) {
	store.Delete(keyAccessToken, keyRefreshToken, keyUser)
}
