package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret       string `mapstructure:"secret"`
	ExpMinutes   int    `mapstructure:"exp_minutes"`
	SessionHours int    `mapstructure:"session_hours"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type LoginLimitConfig struct {
	Attempts      int `mapstructure:"attempts"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type AuthConfig struct {
	Password   PasswordConfig   `mapstructure:"password"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Cookie     CookieConfig     `mapstructure:"cookie"`
	LoginLimit LoginLimitConfig `mapstructure:"login_limit"`
	// RBACModelPath points at a casbin model file; empty uses the built-in model.
	RBACModelPath string `mapstructure:"rbac_model_path"`
}

type EmailConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	SMTPHost      string `mapstructure:"smtp_host"`
	SMTPPort      int    `mapstructure:"smtp_port"`
	SMTPUser      string `mapstructure:"smtp_user"`
	SMTPPassword  string `mapstructure:"smtp_password"`
	FromAddress   string `mapstructure:"from_address"`
	FromName      string `mapstructure:"from_name"`
	AdminReceiver string `mapstructure:"admin_receiver"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// SuggestionTTLSeconds controls how long autocomplete results stay cached.
	SuggestionTTLSeconds int `mapstructure:"suggestion_ttl_seconds"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type ImportConfig struct {
	MaxUploadMB int `mapstructure:"max_upload_mb"`
	// DefaultClearingHouse is used by single payer adds that omit one.
	DefaultClearingHouse string `mapstructure:"default_clearing_house"`
}

type DisplayConfig struct {
	ShowAdsDefault bool `mapstructure:"show_ads_default"`
}
