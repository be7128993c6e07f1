package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/obraunsdorf/playbook-creator/src/settings"
)

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`PLAY LIST`, []string{"PLAY", "LIST"}},
		{`  PLAY   LIST  `, []string{"PLAY", "LIST"}},
		{`PLAY CREATE "Red Zone Fade" RZF "Spread Right"`, []string{"PLAY", "CREATE", "Red Zone Fade", "RZF", "Spread Right"}},
		{`CATEGORY ADD 'Red Zone'`, []string{"CATEGORY", "ADD", "Red Zone"}},
		{`AUTH "admin" ""`, []string{"AUTH", "admin", ""}},
		{`PLAY INFO "say \"hi\""`, []string{"PLAY", "INFO", `say "hi"`}},
		{``, nil},
	}
	for _, tc := range cases {
		got, err := SplitArgs(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestSplitArgsUnterminatedQuote(t *testing.T) {
	_, err := SplitArgs(`PLAY INFO "Red Zone`)
	assert.Error(t, err)
}

func TestEncodeBSON(t *testing.T) {
	type record struct {
		Name  string `bson:"name"`
		Count int32  `bson:"count"`
	}

	data, err := EncodeBSON(record{Name: "Spread Right", Count: 5})
	require.NoError(t, err)

	var decoded record
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, record{Name: "Spread Right", Count: 5}, decoded)

	_, err = EncodeBSON(42)
	assert.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	file := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, EnsureDir(file))
}

func TestLogFilePath(t *testing.T) {
	now := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, filepath.Join("logs", "2024-03-01_14-05-09_localhost_ServerLog.txt"), LogFilePath("logs", "localhost", now))
}

func TestNewLoggerWritesToLogDir(t *testing.T) {
	args := settings.Defaults()
	args.LogDir = t.TempDir()
	args.PrintToScreen = false

	logger, err := NewLogger(&args)
	require.NoError(t, err)
	logger.Infow("hello", "play", "PA Post")
	_ = logger.Sync()

	entries, err := os.ReadDir(args.LogDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(filepath.Join(args.LogDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "PA Post")
}
