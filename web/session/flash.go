package session

import (
	"github.com/gin-contrib/sessions"
)

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a one-shot message shown on the next rendered page. Key is an i18n message id.
type Flash struct {
	Kind FlashKind
	Key  string
}

// AddFlash queues a message and saves the session.
func AddFlash(s sessions.Session, kind FlashKind, key string) error {
	s.AddFlash(Flash{Kind: kind, Key: key})
	return s.Save()
}

// PopFlashes returns and removes the queued messages.
func PopFlashes(s sessions.Session) ([]Flash, error) {
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes, s.Save()
}
