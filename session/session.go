package session

import (
	"encoding/json"
	"log"
	"time"

	"restaurant-orders/cart"
	"restaurant-orders/orders"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxKey = "session"

// Data is the serialized shape of one browser session. Customer and
// admin identities are independent keys, so one browser can hold both.
type Data struct {
	CustomerLoggedIn bool            `json:"customer_logged_in,omitempty"`
	CustomerUsername string          `json:"customer_username,omitempty"`
	AdminLoggedIn    bool            `json:"admin_logged_in,omitempty"`
	AdminUsername    string          `json:"admin_username,omitempty"`
	Cart             cart.Cart       `json:"cart,omitempty"`
	Receipt          *orders.Receipt `json:"receipt,omitempty"`
}

// Session is one request's view of its session data. Mutations are only
// persisted by an explicit Save.
type Session struct {
	ID string
	Data

	m *Manager
}

// Manager loads and saves sessions against a Store.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, ttl: ttl}
}

// Middleware resolves the session for every request: loads the payload
// for the cookie's id, or starts a fresh session when there is none.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{m: m}
		if id, err := c.Cookie(CookieName); err == nil && id != "" {
			s.ID = id
			payload, ok, err := m.store.Get(c.Request.Context(), sessionKey(id))
			if err != nil {
				log.Printf("session load %s: %v", id, err)
			} else if ok {
				if err := json.Unmarshal(payload, &s.Data); err != nil {
					log.Printf("session decode %s: %v", id, err)
					s.Data = Data{}
				}
			}
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Cart == nil {
			s.Cart = cart.New()
		}
		c.Set(ctxKey, s)
		c.Next()
	}
}

// Get returns the request's session. The middleware must have run.
func Get(c *gin.Context) *Session {
	return c.MustGet(ctxKey).(*Session)
}

// Save persists the session payload, refreshes its TTL and (re)issues
// the session cookie.
func (s *Session) Save(c *gin.Context) error {
	payload, err := json.Marshal(s.Data)
	if err != nil {
		return err
	}
	if err := s.m.store.Set(c.Request.Context(), sessionKey(s.ID), payload, s.m.ttl); err != nil {
		return err
	}
	c.SetCookie(CookieName, s.ID, int(s.m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Destroy removes the session from the store and expires the cookie.
func (s *Session) Destroy(c *gin.Context) error {
	if err := s.m.store.Delete(c.Request.Context(), sessionKey(s.ID)); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
