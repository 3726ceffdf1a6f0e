package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 上流スキーマのデフォルト（グループウェアの勤務時間現況API）
const (
	DefaultListField     = "resultData"
	DefaultDateField     = "atDt"
	DefaultClockInField  = "comeTm"
	DefaultClockOutField = "leaveTm"
)

// 負の実働時間の扱い
const (
	NegativePropagate = "propagate" // そのまま週次合算へ（原系互換）
	NegativeExclude   = "exclude"   // 除外扱い（除外件数に加算）
	NegativeClamp     = "clamp"     // 0 に切り上げ
)

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

// 上流レスポンスのフィールド名。空欄はデフォルトで補完する
type SchemaConfig struct {
	ListField     string `yaml:"list_field"`
	DateField     string `yaml:"date_field"`
	ClockInField  string `yaml:"clock_in_field"`
	ClockOutField string `yaml:"clock_out_field"`
}

type PolicyConfig struct {
	NegativeDurations string `yaml:"negative_durations"`
}

type Account struct {
	ID           string `yaml:"id"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
	Role         string `yaml:"role"`
	Disabled     bool   `yaml:"disabled"`
}

type AuthConfig struct {
	TokenTTLHours int       `yaml:"token_ttl_hours"`
	Accounts      []Account `yaml:"accounts"`
}

type Config struct {
	Version     string       `yaml:"version"`
	Mode        string       `yaml:"mode"`
	Server      ServerConfig `yaml:"server"`
	Certificate Certs        `yaml:"certificate"`
	Schema      SchemaConfig `yaml:"schema"`
	Policy      PolicyConfig `yaml:"policy"`
	Auth        AuthConfig   `yaml:"auth"`
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8443"
	}
	if c.Schema.ListField == "" {
		c.Schema.ListField = DefaultListField
	}
	if c.Schema.DateField == "" {
		c.Schema.DateField = DefaultDateField
	}
	if c.Schema.ClockInField == "" {
		c.Schema.ClockInField = DefaultClockInField
	}
	if c.Schema.ClockOutField == "" {
		c.Schema.ClockOutField = DefaultClockOutField
	}
	if c.Policy.NegativeDurations == "" {
		c.Policy.NegativeDurations = NegativePropagate
	}
	if c.Auth.TokenTTLHours <= 0 {
		c.Auth.TokenTTLHours = 24
	}
}

// 起動時に一度だけ検証する。実行中の再読込はしない
func (c *Config) Validate() error {
	if c.Mode != "dev" && c.Mode != "release" {
		return fmt.Errorf("mode は dev か release を指定してください: %q", c.Mode)
	}
	switch c.Policy.NegativeDurations {
	case NegativePropagate, NegativeExclude, NegativeClamp:
	default:
		return fmt.Errorf("policy.negative_durations が不正です: %q", c.Policy.NegativeDurations)
	}
	// レコード内フィールド名の重複は上流スキーマの設定ミスとして弾く
	// （リストキーはレコードのキーと独立なので対象外）
	fields := []struct{ name, value string }{
		{"date_field", c.Schema.DateField},
		{"clock_in_field", c.Schema.ClockInField},
		{"clock_out_field", c.Schema.ClockOutField},
	}
	seen := map[string]string{}
	for _, f := range fields {
		if prev, dup := seen[f.value]; dup {
			return fmt.Errorf("schema のフィールド名が重複しています: %s と %s が %q", prev, f.name, f.value)
		}
		seen[f.value] = f.name
	}
	for i, a := range c.Auth.Accounts {
		if a.ID == "" || a.PasswordHash == "" {
			return fmt.Errorf("auth.accounts[%d]: id と password_hash は必須です", i)
		}
	}
	return nil
}
