package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"wodtracker/internal/client/repositories/credentials"
	"wodtracker/internal/common"
	"wodtracker/internal/dbx"
	"wodtracker/internal/logging"
)

// msgFieldsRequired is the local validation message; it mirrors the server's
// wording so the form shows the same text either way.
const msgFieldsRequired = "Email and password are required."

// AuthAPI is the remote surface the Manager needs. The HTTP api.Client
// satisfies it; tests can provide a fake.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
}

// Manager is the single owner of the Session value. Every mutation goes
// through Login, Register, Logout, or Restore.
//
// Operations are generation-stamped: starting an operation (and logging out)
// bumps the generation, and a completion whose generation has been superseded
// is discarded instead of applied. Two overlapping submissions can therefore
// never silently overwrite each other's outcome.
type Manager struct {
	mu       sync.Mutex
	db       *sql.DB
	api      AuthAPI
	logger   logging.Logger
	onChange func(Session)

	session Session
	gen     uint64
}

func NewManager(db *sql.DB, api AuthAPI, logger logging.Logger) *Manager {
	return &Manager{
		db:     db,
		api:    api,
		logger: logger.With("module", "session"),
	}
}

// SetOnChange registers a listener invoked after every applied transition
// with a copy of the new Session. Call before the first operation.
func (m *Manager) SetOnChange(fn func(Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Snapshot returns a copy of the current Session.
func (m *Manager) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.clone()
}

// begin marks an operation start: bumps the generation, raises Loading, and
// clears the previous error.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.session.Loading = true
	m.session.Err = ""
	snap, cb := m.session.clone(), m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
	return gen
}

// apply finishes the operation started at gen. When a later operation has
// superseded it, the completion is dropped and apply reports false.
func (m *Manager) apply(ctx context.Context, gen uint64, fn func(s *Session)) bool {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		m.logger.Info(ctx, "discarding superseded completion", "gen", gen)
		return false
	}
	fn(&m.session)
	m.session.Loading = false
	snap, cb := m.session.clone(), m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
	return true
}

// setErr records a local validation error without starting an operation:
// nothing else about the session changes and no generation is consumed.
func (m *Manager) setErr(msg string) {
	m.mu.Lock()
	m.session.Err = msg
	snap, cb := m.session.clone(), m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

// Login authenticates against the server and adopts the returned token.
// The token and user are persisted in one transaction before the in-memory
// session ever sees them: an observed Token is always a persisted Token.
// A completion overtaken by a newer operation or a logout is not applied
// and reports common.ErrSuperseded.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		m.setErr(msgFieldsRequired)
		return common.ErrorValidation
	}

	gen := m.begin()

	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.apply(ctx, gen, func(s *Session) { s.Err = err.Error() })
		return err
	}

	user := &User{Email: email}

	// Persist and adopt under one critical section: a logout (or a newer
	// submission) must not slip in between the write and the state change,
	// or a discarded login would leave its token on disk.
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		m.logger.Info(ctx, "discarding superseded login", "gen", gen)
		return common.ErrSuperseded
	}
	if err := m.persistCredentials(ctx, token, user); err != nil {
		m.session.Err = "Could not store session."
		m.session.Loading = false
		snap, cb := m.session.clone(), m.onChange
		m.mu.Unlock()
		m.logger.Error(ctx, "persisting credentials failed", "error", err.Error())
		if cb != nil {
			cb(snap)
		}
		return err
	}
	m.session.Token = token
	m.session.User = user
	m.session.Loading = false
	snap, cb := m.session.clone(), m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
	return nil
}

// Register creates an account. A successful registration does NOT log the
// user in: the token and user stay untouched and the caller navigates to the
// login screen separately.
func (m *Manager) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		m.setErr(msgFieldsRequired)
		return common.ErrorValidation
	}

	gen := m.begin()

	if err := m.api.Register(ctx, email, password); err != nil {
		m.apply(ctx, gen, func(s *Session) { s.Err = err.Error() })
		return err
	}

	if !m.apply(ctx, gen, func(s *Session) {}) {
		return common.ErrSuperseded
	}
	return nil
}

// Logout clears the persisted credential record, then resets the session to
// its empty form. A failure to clear storage is returned to the caller and
// leaves the session state as it was.
func (m *Manager) Logout(ctx context.Context) error {
	// The clear and the reset share one critical section so a login that
	// completes concurrently cannot re-persist a token after the clear.
	m.mu.Lock()
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return credentials.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		m.session.Err = "Could not clear stored session."
		snap, cb := m.session.clone(), m.onChange
		m.mu.Unlock()
		m.logger.Error(ctx, "clearing credentials failed", "error", err.Error())
		if cb != nil {
			cb(snap)
		}
		return err
	}

	m.gen++
	m.session = Session{}
	snap, cb := m.session.clone(), m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
	return nil
}

// Restore loads the persisted credential record into the session. A found
// token is adopted as-is with no validation round-trip; it stays trusted
// until the first protected request is rejected. When nothing is persisted,
// the informational common.ErrNoActiveSession is recorded and returned.
func (m *Manager) Restore(ctx context.Context) error {
	gen := m.begin()

	repo := credentials.NewSQLiteRepository(m.db)

	tokenBytes, err := repo.Get(ctx, credentials.KeyToken)
	if err != nil {
		m.apply(ctx, gen, func(s *Session) { s.Err = "Could not read stored session." })
		return err
	}

	if len(tokenBytes) == 0 {
		m.apply(ctx, gen, func(s *Session) { s.Err = common.ErrNoActiveSession.Error() })
		return common.ErrNoActiveSession
	}

	userBytes, err := repo.Get(ctx, credentials.KeyUser)
	if err != nil {
		m.apply(ctx, gen, func(s *Session) { s.Err = "Could not read stored session." })
		return err
	}

	var user *User
	if len(userBytes) > 0 {
		user = &User{}
		if err := json.Unmarshal(userBytes, user); err != nil {
			m.logger.Warn(ctx, "stored user is unreadable, keeping token only", "error", err.Error())
			user = nil
		}
	}

	m.apply(ctx, gen, func(s *Session) {
		s.Token = string(tokenBytes)
		s.User = user
	})
	return nil
}

// persistCredentials writes the token and the serialized user as one
// transaction so the credential record can never end up half-written.
func (m *Manager) persistCredentials(ctx context.Context, token string, user *User) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing user: %w", err)
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, credentials.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, credentials.KeyUser, userBytes)
	})
}
