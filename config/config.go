package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/rules/mcr"
	"github.com/kevin-chtw/tw_mjcore/rules/riichi"
	"github.com/kevin-chtw/tw_mjcore/rules/shanghai"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Ruleset  string          `mapstructure:"ruleset"`
	LogLevel string          `mapstructure:"log_level"`
	LogDir   string          `mapstructure:"log_dir"`
	Analyzer AnalyzerConfig  `mapstructure:"analyzer"`
	Cache    CacheConfig     `mapstructure:"cache"`
	Riichi   riichi.Config   `mapstructure:"riichi"`
	MCR      mcr.Config      `mapstructure:"mcr"`
	Shanghai shanghai.Config `mapstructure:"shanghai"`
}

type AnalyzerConfig struct {
	Parallelism int `mapstructure:"parallelism"`
}

// CacheConfig 结果缓存，Driver 为 none、etcd 或 redis
type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
	Etcd   EtcdConfig    `mapstructure:"etcd"`
	Redis  RedisConfig   `mapstructure:"redis"`
}

type EtcdConfig struct {
	Endpoints   []string      `mapstructure:"endpoints"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ruleset", rules.NameRiichi)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "./logs")
	v.SetDefault("analyzer.parallelism", 1)

	v.SetDefault("cache.driver", "none")
	v.SetDefault("cache.prefix", "mjcore/")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.etcd.endpoints", []string{"localhost:2379"})
	v.SetDefault("cache.etcd.dial_timeout", 5*time.Second)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("riichi.open_tanyao", riichi.DefaultConfig.OpenTanyao)
	v.SetDefault("riichi.red_fives", riichi.DefaultConfig.RedFives)
	v.SetDefault("riichi.kiriage_mangan", riichi.DefaultConfig.KiriageMangan)
	v.SetDefault("riichi.double_yakuman", riichi.DefaultConfig.DoubleYakuman)
	v.SetDefault("mcr.min_fan", mcr.DefaultConfig.MinFan)
	v.SetDefault("shanghai.cap", shanghai.DefaultConfig.Cap)
	v.SetDefault("shanghai.min_fan", shanghai.DefaultConfig.MinFan)
	v.SetDefault("shanghai.seven_pairs", shanghai.DefaultConfig.SevenPairs)
	v.SetDefault("shanghai.pay_table", shanghai.DefaultConfig.PayTable)
}

// Load 读取 yaml 配置，未配置的项取默认值
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if _, err := rules.Lookup(cfg.Ruleset); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 不读文件时的配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logrus.Fatalf("unmarshal default config: %v", err)
	}
	return &cfg
}

// Apply 按配置重新注册各规则
func Apply(cfg *Config) error {
	for _, rs := range []rules.RuleSet{
		riichi.New(cfg.Riichi),
		mcr.New(cfg.MCR),
		shanghai.New(cfg.Shanghai),
	} {
		if err := rules.Register(rs); err != nil {
			return err
		}
	}
	return nil
}

// Level 日志级别，无法解析时为 info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// RulesDigest 各规则选项的摘要，用于区分缓存结果
func (c *Config) RulesDigest() string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%+v|%+v|%+v", c.Riichi, c.MCR, c.Shanghai))
	return hex.EncodeToString(sum[:8])
}
