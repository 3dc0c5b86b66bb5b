package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestValuesLoader_EmbeddedDefaults(t *testing.T) {
	v, err := newValuesLoader(defaultsFS).Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "https://www.saucedemo.com/", v.LoginURL)
	assert.Equal(t, "standard_user", v.Username)
	assert.Equal(t, "secret_sauce", v.Password)
	assert.Equal(t, "760001", v.ZipCode)
	assert.Equal(t, "chromium", v.BrowserEngine)
	assert.True(t, v.Headless)
	assert.True(t, v.HeadlessSet)
	assert.Equal(t, 1920, v.ViewportWidth)
	assert.Equal(t, 10000, v.WaitTimeoutMs)
	assert.Equal(t, 500, v.PollIntervalMs)
	assert.Equal(t, uint64(0), v.RandomSeed)
	assert.True(t, v.RandomSeedSet)
	assert.Equal(t, "reports", v.ArtifactsDir)
	assert.Equal(t, 30000, v.BudgetTotalMs)
	assert.Equal(t, 2000, v.BudgetStepsMs["cart_navigation"])
	assert.Len(t, v.BudgetStepsMs, 6)
	assert.Empty(t, v.Notify.Channels)
	assert.True(t, v.Notify.OnError)
	assert.False(t, v.Notify.OnComplete)
	assert.Equal(t, 587, v.Notify.SMTPPort)
}

func TestValuesLoader_Layering(t *testing.T) {
	global := writeFile(t, "global.yml", `
username: problem_user
browser:
  engine: Firefox
  headless: true
budgets:
  steps_ms:
    login: 9000
notify:
  channels: [webhook]
  webhook_urls: ["https://hooks.example.com/a"]
`)
	local := writeFile(t, "local.yml", `
password: local_secret
random_seed: 42
browser:
  headless: false
budgets:
  steps_ms:
    order_review: 100
`)

	v, err := newValuesLoader(defaultsFS).Load(local, global)
	require.NoError(t, err)

	assert.Equal(t, "problem_user", v.Username, "global over embedded")
	assert.Equal(t, "local_secret", v.Password, "local over embedded")
	assert.Equal(t, "firefox", v.BrowserEngine, "engine lower-cased")
	assert.False(t, v.Headless, "explicit false in local wins over global true")
	assert.Equal(t, uint64(42), v.RandomSeed)
	assert.Equal(t, 9000, v.BudgetStepsMs["login"], "step budgets merged per key")
	assert.Equal(t, 100, v.BudgetStepsMs["order_review"])
	assert.Equal(t, 3000, v.BudgetStepsMs["product_selection"], "embedded budget kept")
	assert.Equal(t, []string{"webhook"}, v.Notify.Channels)
	assert.Equal(t, []string{"https://hooks.example.com/a"}, v.Notify.WebhookURLs)
	assert.Equal(t, "https://www.saucedemo.com/", v.LoginURL)
}

func TestValuesLoader_CommentedOrEmptyFile(t *testing.T) {
	data, err := defaultsFS.ReadFile(embeddedConfig)
	require.NoError(t, err)

	for name, body := range map[string]string{
		"commented template": string(commentOut(data)),
		"empty":              "",
		"whitespace":         "\n   \n",
	} {
		t.Run(name, func(t *testing.T) {
			v, err := newValuesLoader(defaultsFS).Load("", writeFile(t, "config.yml", body))
			require.NoError(t, err)
			assert.Equal(t, "standard_user", v.Username)
		})
	}
}

func TestValuesLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		errPart string
	}{
		{name: "unknown key", body: "user_name: x\n", errPart: "user_name"},
		{name: "negative slow mo", body: "browser:\n  slow_mo_ms: -1\n", errPart: "browser.slow_mo_ms"},
		{name: "zero wait timeout", body: "wait:\n  timeout_ms: 0\n", errPart: "wait.timeout_ms"},
		{name: "zero poll interval", body: "wait:\n  poll_interval_ms: 0\n", errPart: "wait.poll_interval_ms"},
		{name: "negative step budget", body: "budgets:\n  steps_ms:\n    login: -5\n", errPart: "budgets.steps_ms.login"},
		{name: "wrong type", body: "browser:\n  headless: maybe\n", errPart: "parse config"},
		{name: "negative seed", body: "random_seed: -3\n", errPart: "parse config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newValuesLoader(defaultsFS).Load(writeFile(t, "config.yml", tc.body), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse local config")
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestValuesLoader_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	_, err := newValuesLoader(defaultsFS).Load("", dir) // a directory can't be read as a file
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse global config")
}

func TestValues_MergeFrom_ExplicitZero(t *testing.T) {
	dst := Values{SlowMoMs: 250, SlowMoMsSet: true, InstallBrowsers: true, InstallBrowsersSet: true, RandomSeed: 9, RandomSeedSet: true}
	dst.mergeFrom(&Values{SlowMoMsSet: true, InstallBrowsersSet: true, RandomSeedSet: true})

	assert.Equal(t, 0, dst.SlowMoMs)
	assert.False(t, dst.InstallBrowsers)
	assert.Equal(t, uint64(0), dst.RandomSeed)

	dst.mergeFrom(&Values{})
	assert.True(t, dst.SlowMoMsSet, "unset fields leave dst alone")
}

func TestNotifyValues_MergeFrom(t *testing.T) {
	dst := NotifyValues{Channels: []string{"slack"}, OnError: true, OnErrorSet: true, SlackToken: "a"}
	dst.mergeFrom(&NotifyValues{OnErrorSet: true, SlackChannel: "qa", EmailTo: []string{"qa@example.com"}})

	assert.Equal(t, []string{"slack"}, dst.Channels)
	assert.False(t, dst.OnError)
	assert.Equal(t, "a", dst.SlackToken)
	assert.Equal(t, "qa", dst.SlackChannel)
	assert.Equal(t, []string{"qa@example.com"}, dst.EmailTo)
}

func TestStripComments(t *testing.T) {
	in := "# header\n\nusername: x # trailing stays\n  # indented\npassword: y\n"
	assert.Equal(t, "username: x # trailing stays\npassword: y\n", stripComments(in))
}

func TestTrimList(t *testing.T) {
	assert.Nil(t, trimList(nil))
	assert.Nil(t, trimList([]string{" ", ""}))
	assert.Equal(t, []string{"a", "b"}, trimList([]string{" a", "", "b "}))
}
