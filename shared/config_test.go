package shared

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

const testConfigJsonc = `{
	// Trailing commas and comments are fine
	"log_level": "Debug",
	"db_file": "moods.db",
	"schedule": "*/5 * * * *",
	"images_dir": "images",
}`

const testSecretsJsonc = `{
	"slack_token": "xoxp-from-file",
	"api_keys": ["key1", "key2"],
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FromFiles(t *testing.T) {
	t.Setenv(slackTokenVarName, "")
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "config.jsonc", testConfigJsonc)
	secretsPath := writeTestFile(t, dir, "secrets.jsonc", testSecretsJsonc)

	cfg, err := loadConfig(cfgPath, secretsPath)
	assert.Nil(t, err)
	assert.Equal(t, "Debug", cfg.LogLevel)
	assert.Equal(t, "moods.db", cfg.DbFile)
	assert.Equal(t, "*/5 * * * *", cfg.Schedule)
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, "xoxp-from-file", cfg.Secrets.SlackToken)
	assert.Equal(t, []string{"key1", "key2"}, cfg.Secrets.ApiKeys)
	// Defaults for what the file leaves out
	assert.Equal(t, DefaultSlackApiBase, cfg.SlackApiBase)
	assert.Equal(t, DefaultSlackTimeoutSec, cfg.SlackTimeoutSec)
	assert.Equal(t, DefaultHistoryKeep, cfg.HistoryKeep)
}

func TestLoadConfig_EnvTokenWins(t *testing.T) {
	t.Setenv(slackTokenVarName, "xoxp-from-env")
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "config.jsonc", `{}`)
	secretsPath := writeTestFile(t, dir, "secrets.jsonc", testSecretsJsonc)

	cfg, err := loadConfig(cfgPath, secretsPath)
	assert.Nil(t, err)
	assert.Equal(t, "xoxp-from-env", cfg.Secrets.SlackToken)
	assert.Equal(t, DefaultSchedule, cfg.Schedule)
}

func TestLoadConfig_NoSecretsFileWithEnvToken(t *testing.T) {
	t.Setenv(slackTokenVarName, "xoxp-from-env")
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "config.jsonc", `{}`)

	cfg, err := loadConfig(cfgPath, filepath.Join(dir, "missing.jsonc"))
	assert.Nil(t, err)
	assert.Equal(t, "xoxp-from-env", cfg.Secrets.SlackToken)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv(slackTokenVarName, "")
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "config.jsonc", `{}`)
	badPath := writeTestFile(t, dir, "bad.jsonc", `{"log_level": `)

	// No token anywhere
	_, err := loadConfig(cfgPath, filepath.Join(dir, "missing.jsonc"))
	assert.NotNil(t, err)

	// Missing config file
	_, err = loadConfig(filepath.Join(dir, "missing.jsonc"), badPath)
	assert.NotNil(t, err)

	// Malformed config file
	_, err = loadConfig(badPath, badPath)
	assert.NotNil(t, err)
}

func TestUserAgentString(t *testing.T) {
	dir := t.TempDir()
	versionPath := writeTestFile(t, dir, "version.txt", "v1.4.2\n")
	assert.Equal(t, "Mood-Parrot-Bot/1.4.2", buildUserAgentString(versionPath))
	assert.Equal(t, "Mood-Parrot-Bot/dev", buildUserAgentString(filepath.Join(dir, "nope.txt")))
}
