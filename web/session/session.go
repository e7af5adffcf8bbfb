// Package session keeps the per-browser session state: the logged-in identity
// and the selected reply language.
package session

import (
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/lingochat/lingochat/web/locale"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserId   = "user_id"
	keyUsername = "username"
	keyLanguage = "language"
)

// ErrInvalidLanguage is returned when a language code is outside the supported set.
var ErrInvalidLanguage = errors.New("invalid language")

func init() {
	gob.Register(Flash{})
}

// Identity is the authenticated user of a session.
type Identity struct {
	UserId   int
	Username string
}

// State is a typed snapshot of a session.
type State struct {
	Identity *Identity
	Language locale.Language
}

func (s State) IsAuthenticated() bool {
	return s.Identity != nil
}

// Load reads the typed state out of the session bag.
func Load(s sessions.Session) State {
	return State{
		Identity: GetIdentity(s),
		Language: GetLanguage(s),
	}
}

// GetIdentity returns nil for anonymous sessions.
func GetIdentity(s sessions.Session) *Identity {
	id, ok := s.Get(keyUserId).(int)
	if !ok {
		return nil
	}
	username, _ := s.Get(keyUsername).(string)
	return &Identity{UserId: id, Username: username}
}

// GetLanguage returns the stored language, or the default when none is set
// or the stored value is not a supported code.
func GetLanguage(s sessions.Session) locale.Language {
	code, _ := s.Get(keyLanguage).(string)
	if lang, ok := locale.ParseLanguage(code); ok {
		return lang
	}
	return locale.DefaultLanguage
}

// SetLanguage stores code if it is supported. Otherwise the session is left untouched.
func SetLanguage(s sessions.Session, code string) (locale.Language, error) {
	lang, ok := locale.ParseLanguage(code)
	if !ok {
		return "", ErrInvalidLanguage
	}
	s.Set(keyLanguage, lang.String())
	if err := s.Save(); err != nil {
		return "", err
	}
	return lang, nil
}

// Login sets the identity and resets the language to the default.
func Login(s sessions.Session, id Identity) error {
	s.Set(keyUserId, id.UserId)
	s.Set(keyUsername, id.Username)
	s.Set(keyLanguage, locale.DefaultLanguage.String())
	return s.Save()
}

// Clear removes every field. Clearing an empty session is a no-op.
func Clear(s sessions.Session) error {
	s.Clear()
	return s.Save()
}

func Default(c *gin.Context) sessions.Session {
	return sessions.Default(c)
}

func GetLoginUser(c *gin.Context) *Identity {
	return GetIdentity(Default(c))
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func GetState(c *gin.Context) State {
	return Load(Default(c))
}

func GetLanguageFromContext(c *gin.Context) locale.Language {
	return GetLanguage(Default(c))
}

// SetMaxAge sets the cookie lifetime in seconds for the next save; 0 keeps it
// for the browser session. The cookie is marked Secure when the request came over TLS.
func SetMaxAge(c *gin.Context, maxAge int) {
	Default(c).Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
