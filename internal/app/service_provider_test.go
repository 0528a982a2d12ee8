package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Провайдер читает config.yaml из рабочей директории
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	cfg := "game:\n  stagger: 10ms\n  min_spin_duration: 50ms\n  max_spin_duration: 50ms\n  tick_interval: 5ms\n  seed: 9\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestServiceProvider_Router(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "error")

	sp := newServiceProvider()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sp.Loop().Run(ctx)

	srv := httptest.NewServer(sp.Router())
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK, "ok"},
		{http.MethodGet, "/slot/state", "", http.StatusOK, `"balance":1000`},
		{http.MethodPost, "/slot/bet", `{"direction":"up"}`, http.StatusOK, `"bet":20`},
		{http.MethodPost, "/slot/spin", "", http.StatusOK, `"accepted":true`},
		{http.MethodGet, "/slot/symbols", "", http.StatusOK, `"name":"Cherry"`},
		{http.MethodGet, "/metrics", "", http.StatusOK, "slot_spins_started_total"},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
		if err != nil {
			t.Fatal(err)
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, res.Body)
		res.Body.Close()
		if res.StatusCode != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, res.StatusCode, tt.status)
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("%s %s: body missing %s", tt.method, tt.path, tt.want)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := sp.SlotService().State(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !st.Spinning {
			if st.Balance < 980 || (st.Balance-980)%20 != 0 {
				t.Fatalf("state after settle = %+v", st)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("spin did not settle")
}
