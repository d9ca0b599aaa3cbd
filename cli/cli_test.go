package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hhenriques/codefactory/cli/cmd"
	"github.com/hhenriques/codefactory/controller"
)

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	exit := func(code int) { t.Fatalf("unexpected exit(%d)", code) }

	run := func(t *testing.T, args ...string) string {
		t.Helper()

		var buf bytes.Buffer

		ctx := cmd.WithOutput(context.Background(), &buf)
		if err := Run(ctx, exit, append([]string{"--log-time-layout=none"}, args...)...); err != nil {
			t.Fatalf("Run(%q) error = %v", args, err)
		}

		return buf.String()
	}

	t.Run("backends", func(t *testing.T) {
		if got := run(t, "backends"); !strings.HasPrefix(got, "csharp") {
			t.Errorf("backends = %q", got)
		}
	})

	t.Run("version", func(t *testing.T) {
		if got := run(t, "version"); !strings.Contains(got, "codefactory") {
			t.Errorf("version = %q", got)
		}
	})

	manifest := filepath.Join(home, "products.yaml")
	if err := os.WriteFile(manifest, controller.Sample, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("gen", func(t *testing.T) {
		got := run(t, "gen", "model", manifest)
		if !strings.Contains(got, "public class Product {") {
			t.Errorf("gen model = %q", got)
		}
	})

	t.Run("config", func(t *testing.T) {
		conf := configPath(baseConfig)
		if err := os.WriteFile(conf, []byte("backend: java\nindent: 2\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Remove(conf) })

		got := run(t, "gen", "model", manifest)
		if !strings.Contains(got, "\n  public String getName() {\n") {
			t.Errorf("gen model with config = %q", got)
		}

		got = run(t, "gen", "model", "--backend", "cs", manifest)
		if !strings.Contains(got, "public class Product {") || strings.Contains(got, "getName") {
			t.Errorf("flag did not override config: %q", got)
		}
	})
}
