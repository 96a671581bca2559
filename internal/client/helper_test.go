package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGateway(t *testing.T, handler http.Handler) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := &Session{
		Credentials: Credentials{UserID: "alice", Password: "secret"},
		User:        Participant{ID: "alice", Name: "Alice"},
	}
	return NewGateway(srv.URL, session)
}

// seedStore builds a loaded store directly, skipping the network.
func seedStore(gw *Gateway, days ...TripDay) *Store {
	st := NewStore(gw)
	st.album = Album{ID: "album-1", Title: "Summer Trip"}
	st.participants = []Participant{
		{ID: "alice", Name: "Alice"},
		{ID: "bob", Name: "Bob"},
	}
	st.days = days
	st.loaded = true
	st.sortDays()
	return st
}

func okJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func errJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"code":"` + code + `","message":"` + message + `"}`))
}
