package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscord_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload failed: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL)
	d.Send("hello")
	if got["content"] != "hello" {
		t.Fatalf("content = %q, want hello", got["content"])
	}
}

func TestDiscord_Sendf(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	NewDiscord(srv.URL).Sendf("qty: %d", 42)
	if got["content"] != "qty: 42" {
		t.Fatalf("content = %q, want qty: 42", got["content"])
	}
}

// webhook未配置时不发起网络请求，也绝不报错
func TestDiscord_NotConfigured(t *testing.T) {
	d := NewDiscord("")
	d.Send("should only hit local log")
	d.Sendf("still fine %d", 1)
}

// 非204响应只记日志，不向上抛
func TestDiscord_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	NewDiscord(srv.URL).Send("oops")
}

// 目标不可达同样只记日志
func TestDiscord_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	NewDiscord(srv.URL).Send("unreachable")
}
