package session

import (
	"errors"
	"testing"

	"github.com/lingochat/lingochat/web/locale"

	"github.com/gin-contrib/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSession is an in-memory sessions.Session.
type memSession struct {
	values  map[any]any
	flashes []any
	saves   int
	saveErr error
}

func newMemSession() *memSession {
	return &memSession{values: map[any]any{}}
}

func (m *memSession) ID() string              { return "mem" }
func (m *memSession) Get(key any) any         { return m.values[key] }
func (m *memSession) Set(key any, val any)    { m.values[key] = val }
func (m *memSession) Delete(key any)          { delete(m.values, key) }
func (m *memSession) Clear()                  { m.values = map[any]any{} }
func (m *memSession) Options(sessions.Options) {}
func (m *memSession) AddFlash(value any, _ ...string) {
	m.flashes = append(m.flashes, value)
}
func (m *memSession) Flashes(_ ...string) []any {
	f := m.flashes
	m.flashes = nil
	return f
}
func (m *memSession) Save() error {
	m.saves++
	return m.saveErr
}

func TestGetLanguage_Default(t *testing.T) {
	s := newMemSession()
	assert.Equal(t, locale.English, GetLanguage(s))

	s.Set(keyLanguage, "fr")
	assert.Equal(t, locale.English, GetLanguage(s))
}

func TestSetLanguage_Supported(t *testing.T) {
	for _, lang := range locale.SupportedLanguages() {
		s := newMemSession()
		got, err := SetLanguage(s, lang.String())
		require.NoError(t, err)
		assert.Equal(t, lang, got)
		assert.Equal(t, lang, GetLanguage(s))
	}
}

func TestSetLanguage_UnsupportedLeavesStateUnchanged(t *testing.T) {
	for _, code := range []string{"", "fr", "EN", "de-DE", "en "} {
		s := newMemSession()
		_, err := SetLanguage(s, "ta")
		require.NoError(t, err)
		saves := s.saves

		_, err = SetLanguage(s, code)
		assert.ErrorIs(t, err, ErrInvalidLanguage)
		assert.Equal(t, locale.Tamil, GetLanguage(s))
		assert.Equal(t, saves, s.saves)
	}
}

func TestSetLanguage_SaveError(t *testing.T) {
	s := newMemSession()
	s.saveErr = errors.New("cookie too large")

	_, err := SetLanguage(s, "hi")
	assert.Error(t, err)
}

func TestLogin_ResetsLanguage(t *testing.T) {
	s := newMemSession()
	_, err := SetLanguage(s, "kn")
	require.NoError(t, err)

	require.NoError(t, Login(s, Identity{UserId: 7, Username: "asha"}))

	state := Load(s)
	require.True(t, state.IsAuthenticated())
	assert.Equal(t, Identity{UserId: 7, Username: "asha"}, *state.Identity)
	assert.Equal(t, locale.English, state.Language)
}

func TestClear_Idempotent(t *testing.T) {
	s := newMemSession()
	require.NoError(t, Login(s, Identity{UserId: 1, Username: "a"}))

	require.NoError(t, Clear(s))
	assert.False(t, Load(s).IsAuthenticated())
	assert.Empty(t, s.values)

	require.NoError(t, Clear(s))
	assert.False(t, Load(s).IsAuthenticated())
}

func TestFlashes(t *testing.T) {
	s := newMemSession()
	require.NoError(t, AddFlash(s, FlashError, "toasts.usernameExists"))
	s.AddFlash("stray string")

	flashes, err := PopFlashes(s)
	require.NoError(t, err)
	assert.Equal(t, []Flash{{Kind: FlashError, Key: "toasts.usernameExists"}}, flashes)

	flashes, err = PopFlashes(s)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}
