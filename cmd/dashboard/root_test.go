package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/unweave/dashboard"
	"github.com/unweave/dashboard/auth"
)

func TestRootCommand_HasServe(t *testing.T) {
	root := newRootCommand()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	for _, name := range []string{"config", "addr", "base-path", "env", "demo-user"} {
		assert.NotNil(t, serve.Flags().Lookup(name), name)
	}
}

func TestServe_InvalidConfigFails(t *testing.T) {
	t.Setenv("DASHBOARD_THEME", "neon")

	root := newRootCommand()
	root.SetArgs([]string{"serve"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}

func TestPrintBanner(t *testing.T) {
	color.NoColor = true

	cfg := dashboard.NewConfig(
		dashboard.WithBasePath("/dash"),
		dashboard.WithDemoUser(&auth.UserInfo{DisplayName: "Ada"}),
	)

	var buf bytes.Buffer
	printBanner(&buf, cfg, "127.0.0.1:8080")

	out := buf.String()
	assert.Contains(t, out, "http://127.0.0.1:8080/dash/")
	assert.Contains(t, out, "/dash/metrics")
	assert.Contains(t, out, "Ada")
}

func TestServeFlags_DemoUser(t *testing.T) {
	var flags serveFlags

	cmd := &cobra.Command{Use: "serve"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--demo-user", "Grace Hopper", "--addr", ":9191"}))

	cfg, err := flags.load(cmd)
	require.NoError(t, err)

	require.NotNil(t, cfg.DemoUser)
	assert.Equal(t, "Grace Hopper", cfg.DemoUser.DisplayName)
	assert.True(t, cfg.DemoUser.Authenticated())
	assert.Equal(t, ":9191", cfg.Addr)
}

func TestServeFlags_NoDemoUserByDefault(t *testing.T) {
	var flags serveFlags

	cmd := &cobra.Command{Use: "serve"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := flags.load(cmd)
	require.NoError(t, err)
	assert.Nil(t, cfg.DemoUser)
}

func TestConfigCommand_PrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Staging\nmenu_idle_ttl: 5m\n"), 0o600))

	var out bytes.Buffer

	root := newRootCommand()
	root.SetArgs([]string{"config", "-c", path, "--demo-user", "Ada"})
	root.SetOut(&out)
	require.NoError(t, root.Execute())

	var printed map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &printed))

	assert.Equal(t, "Staging", printed["title"])
	assert.Equal(t, "5m0s", printed["menu_idle_ttl"])

	demo, ok := printed["demo_user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", demo["display_name"])
}
