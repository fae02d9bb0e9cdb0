package game_session_repo

import (
	"fmt"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/slot"
	"sync"
	"time"
)

// session - игровая сессия. seq создается при первой игровой команде
type session struct {
	seq       *slot.Sequencer
	expiresAt time.Time
}

// repo хранит секвенсоры по ID сессии авторизации. Состояние счета живет
// только здесь и исчезает вместе с сессией
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

type Option func(*repo)

// WithClock - источник текущего времени для проверки срока жизни
func WithClock(now func() time.Time) Option {
	return func(r *repo) { r.now = now }
}

func NewGameSessionRepository(opts ...Option) repository.GameSessionRepository {
	r := &repo{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open регистрирует сессию авторизации. Без Open игровые команды по sessionID невозможны
func (r *repo) Open(sessionID string, expiresAt time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		s.expiresAt = expiresAt
		return
	}
	r.sessions[sessionID] = &session{expiresAt: expiresAt}
}

// GetOrCreate возвращает секвенсор открытой сессии, создавая его через create при первом обращении
func (r *repo) GetOrCreate(sessionID string, create func() *slot.Sequencer) (*slot.Sequencer, error) {
	r.mtx.RLock()
	s, ok := r.sessions[sessionID]
	var seq *slot.Sequencer
	if ok && r.alive(s) {
		seq = s.seq
	}
	r.mtx.RUnlock()
	if seq != nil {
		return seq, nil
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	// Пока ждали блокировку, сессию могли закрыть или уже создать секвенсор
	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if s.seq == nil {
		s.seq = create()
	}
	return s.seq, nil
}

// Get - секвенсор открытой сессии. Если игровых команд еще не было, сессия считается ненайденной
func (r *repo) Get(sessionID string) (*slot.Sequencer, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, err := r.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if s.seq == nil {
		return nil, fmt.Errorf("session %s has no game yet: %w", sessionID, model.ErrSessionNotFound)
	}
	return s.seq, nil
}

// Delete - удаляет сессию. Незавершенный ход доиграет, но результат уже никто не прочитает
func (r *repo) Delete(sessionID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
}

// Sweep удаляет истекшие сессии и возвращает их число
func (r *repo) Sweep() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if !r.alive(s) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return len(r.sessions)
}

// lookup вызывается под блокировкой на запись. Истекшая сессия удаляется сразу
func (r *repo) lookup(sessionID string) (*session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, model.ErrSessionNotFound)
	}
	if !r.alive(s) {
		delete(r.sessions, sessionID)
		return nil, fmt.Errorf("session %s expired: %w", sessionID, model.ErrSessionNotFound)
	}
	return s, nil
}

func (r *repo) alive(s *session) bool {
	return r.now().Before(s.expiresAt)
}
