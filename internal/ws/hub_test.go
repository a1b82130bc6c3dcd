package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestHub_PublishToUserOnlyReachesThatUser(t *testing.T) {
	hub := startHub(t)
	alice, bob := uuid.New(), uuid.New()

	a1 := NewClient(hub, nil, alice)
	a2 := NewClient(hub, nil, alice)
	b := NewClient(hub, nil, bob)
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 3 })

	hub.PublishToUser(alice, []byte(`{"type":"notification"}`))

	for _, c := range []*Client{a1, a2} {
		select {
		case msg := <-c.send:
			if string(msg) != `{"type":"notification"}` {
				t.Fatalf("unexpected payload %s", msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("expected message for alice")
		}
	}

	select {
	case msg := <-b.send:
		t.Fatalf("bob should not receive %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := NewClient(hub, nil, uuid.New())
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}

	hub.Unregister(c)
	hub.PublishToUser(c.userID, []byte("x"))
}

func TestHub_RegisterAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	finished := make(chan struct{})
	clients := make([]*Client, 0, 300)
	go func() {
		defer close(finished)
		for i := 0; i < 300; i++ {
			c := NewClient(hub, nil, uuid.New())
			clients = append(clients, c)
			hub.Register(c)
			hub.Unregister(c)
		}
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("register after stop blocked")
	}
	for _, c := range clients {
		if _, ok := <-c.send; ok {
			t.Fatalf("expected send channel closed after stop")
		}
	}
	if hub.ClientCount() != 0 {
		t.Fatalf("expected no clients, got %d", hub.ClientCount())
	}
}

type rejectAll struct{}

func (rejectAll) Authenticate(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

func TestHandler_RejectsMissingOrInvalidToken(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewHandler(NewHub(nil), rejectAll{}, nil).RegisterRoutes(app)

	for _, target := range []string{"/ws/notifications", "/ws/notifications?token=bogus"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, resp.StatusCode)
		}
	}
}
