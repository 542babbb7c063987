package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/rules/shanghai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
ruleset: shanghai
log_level: debug
analyzer:
  parallelism: 4
cache:
  driver: redis
  ttl: 30s
  redis:
    addr: 127.0.0.1:6380
shanghai:
  cap: 6
  seven_pairs: true
riichi:
  kiriage_mangan: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "mjcore.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func Test_Load(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, rules.NameShanghai, cfg.Ruleset)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, 4, cfg.Analyzer.Parallelism)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "127.0.0.1:6380", cfg.Cache.Redis.Addr)
	assert.Equal(t, "mjcore/", cfg.Cache.Prefix)

	assert.Equal(t, 6, cfg.Shanghai.Cap)
	assert.True(t, cfg.Shanghai.SevenPairs)
	assert.Equal(t, 1, cfg.Shanghai.MinFan)
	assert.Equal(t, []int{1, 2, 4, 6, 8, 10, 12, 15}, cfg.Shanghai.PayTable)

	assert.True(t, cfg.Riichi.KiriageMangan)
	assert.True(t, cfg.Riichi.OpenTanyao)
	assert.Equal(t, 8, cfg.MCR.MinFan)
	assert.Equal(t, "./logs", cfg.LogDir)
}

func Test_LoadUnknownRuleset(t *testing.T) {
	_, err := config.Load(writeConfig(t, "ruleset: sichuan\n"))
	assert.ErrorIs(t, err, mahjong.ErrUnsupportedShape)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func Test_Apply(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sample))
	require.NoError(t, err)
	require.NoError(t, config.Apply(cfg))
	t.Cleanup(func() {
		require.NoError(t, config.Apply(config.Default()))
	})

	rs, err := rules.Lookup(rules.NameShanghai)
	require.NoError(t, err)
	sh, ok := rs.(*shanghai.RuleSet)
	require.True(t, ok)
	assert.Equal(t, 6, sh.Config().Cap)
	assert.True(t, sh.Shapes().SevenPairs)

	assert.ElementsMatch(t, rules.Names, rules.Registered())
}

func Test_Default(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, rules.NameRiichi, cfg.Ruleset)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, 8, cfg.MCR.MinFan)
}

func Test_RulesDigest(t *testing.T) {
	a, b := config.Default(), config.Default()
	assert.Equal(t, a.RulesDigest(), b.RulesDigest())

	b.LogLevel = "debug"
	b.Cache.Driver = "redis"
	assert.Equal(t, a.RulesDigest(), b.RulesDigest())

	b.MCR.MinFan = 4
	assert.NotEqual(t, a.RulesDigest(), b.RulesDigest())

	c := config.Default()
	c.Shanghai.PayTable = append([]int{}, c.Shanghai.PayTable...)
	c.Shanghai.PayTable[0] = 2
	assert.NotEqual(t, a.RulesDigest(), c.RulesDigest())
}
