package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	AppName  string `yaml:"appname" json:"appname"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Environ  string `yaml:"environ" json:"environ"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	JwtExpire int    `yaml:"jwt_expire" json:"jwt_expire"` // hours
}

type DBConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type SmtpConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	NotifyTo string `yaml:"notify_to" json:"notify_to"`
}

type AdminConfig struct {
	Username string `yaml:"username" json:"username"`
	// InitPassword is only used to seed the operator account when the
	// users table is empty. Changing it later has no effect.
	InitPassword string `yaml:"init_password" json:"init_password"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig   `yaml:"system" json:"system"`
	Web      WebConfig   `yaml:"web" json:"web"`
	Database DBConfig    `yaml:"database" json:"database"`
	Smtp     SmtpConfig  `yaml:"smtp" json:"smtp"`
	Admin    AdminConfig `yaml:"admin" json:"admin"`
	Logger   LogConfig   `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		AppName:  "SmartDeals",
		Location: "Asia/Kolkata",
		Workdir:  "/var/smartdeals",
		Environ:  "development",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      5000,
		Secret:    "9b6de5cc-smartdeals-0cc9136f",
		JwtExpire: 24,
	},
	Database: DBConfig{
		Enabled:  false,
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "smartdeals",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Smtp: SmtpConfig{
		Enabled:  false,
		Host:     "smtp.gmail.com",
		Port:     587,
		From:     "noreply@iajaykumar.com",
		NotifyTo: "afarenziya@gmail.com",
	},
	Admin: AdminConfig{
		Username:     "admin",
		InitPassword: "admin123",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "smartdeals.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	if v, ok := os.LookupEnv(name); ok {
		f(cast.ToBool(v))
	}
}

func setEnvIntValue(name string, f func(v int)) {
	if v, ok := os.LookupEnv(name); ok {
		f(cast.ToInt(v))
	}
}

// LoadConfig loads the yaml configuration file and applies
// SMARTDEALS_* environment overrides. A missing file yields the
// default configuration.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("SMARTDEALS_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SMARTDEALS_SYSTEM_ENVIRON", func(v string) { cfg.System.Environ = v })
	setEnvBoolValue("SMARTDEALS_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("SMARTDEALS_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("SMARTDEALS_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("SMARTDEALS_WEB_SECRET", func(v string) { cfg.Web.Secret = v })

	setEnvBoolValue("SMARTDEALS_DB_ENABLED", func(v bool) { cfg.Database.Enabled = v })
	setEnvValue("SMARTDEALS_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("SMARTDEALS_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("SMARTDEALS_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("SMARTDEALS_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("SMARTDEALS_DB_PASSWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("SMARTDEALS_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvBoolValue("SMARTDEALS_SMTP_ENABLED", func(v bool) { cfg.Smtp.Enabled = v })
	setEnvValue("SMARTDEALS_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvIntValue("SMARTDEALS_SMTP_PORT", func(v int) { cfg.Smtp.Port = v })
	setEnvValue("SMARTDEALS_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("SMARTDEALS_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("SMARTDEALS_SMTP_NOTIFY_TO", func(v string) { cfg.Smtp.NotifyTo = v })

	setEnvValue("SMARTDEALS_ADMIN_USERNAME", func(v string) { cfg.Admin.Username = v })
	setEnvValue("SMARTDEALS_ADMIN_INIT_PASSWORD", func(v string) { cfg.Admin.InitPassword = v })

	return cfg
}
