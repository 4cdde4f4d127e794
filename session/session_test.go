package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-orders/catalog"

	"github.com/gin-gonic/gin"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	payload, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || string(payload) != "v" {
		t.Fatalf("expected hit with payload, got %q ok=%v err=%v", payload, ok, err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected entry expired")
	}
}

func sessionRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.POST("/login", func(c *gin.Context) {
		s := Get(c)
		s.CustomerLoggedIn = true
		s.CustomerUsername = "asha"
		if _, err := s.Cart.Add(testMenuForSession, 1, 2); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		if err := s.Save(c); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	r.GET("/whoami", func(c *gin.Context) {
		s := Get(c)
		c.JSON(http.StatusOK, gin.H{"username": s.CustomerUsername, "cart_qty": s.Cart[1]})
	})
	return r
}

func TestSessionPersistsAcrossRequests(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	r := sessionRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d", w.Code)
	}

	var sid string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			sid = ck.Value
		}
	}
	if sid == "" {
		t.Fatalf("expected session cookie after save")
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("whoami status %d", w2.Code)
	}
	body := w2.Body.String()
	if body != `{"cart_qty":2,"username":"asha"}` {
		t.Fatalf("unexpected session state: %s", body)
	}
}

func TestFreshSessionPerUnknownCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	r := sessionRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "gone"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != `{"cart_qty":0,"username":""}` {
		t.Fatalf("expected empty session for unknown id, got %s", w.Body.String())
	}
}

var testMenuForSession = catalog.Catalog{{ID: 1, Name: "Margherita Pizza", Price: 300}}
