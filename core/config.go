package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address            string
		DebugAddress       string
		ReadTimeout        time.Duration
		WriteTimeout       time.Duration
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	StoreConfig struct {
		Seed          bool
		SequentialIDs bool
	}

	Config struct {
		Env              string
		Debug            bool
		TestMode         bool
		AppName          string
		Build            string
		SecretKey        string
		DefaultFromEmail string
		SendgridAPIKey   string
		RollbarToken     string
		Currency         string

		Server ServerConfig
		Store  StoreConfig

		OverdueCheckInterval time.Duration
		ImportMaxRows        int
		ImportMaxUploadSize  string
		ExcellentAttendance  int
		AtRiskAttendance     int
	}
)

// NewConfig reads the configuration from defaults, the environment and
// an optional `config/.env.<env>` file, in increasing order of precedence.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Little Champions")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "k3v!q9-d0x#r2m$8fl+7b&ze1w(t5)s@y4u^n6ha=c%jg")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("sendgridAPIKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("currency", "USD")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugAddress", ":4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("store.seed", true)
	v.SetDefault("store.sequentialIDs", false)
	v.SetDefault("fees.overdueCheckInterval", time.Hour)
	v.SetDefault("import.maxRows", 1000)
	v.SetDefault("import.maxUploadSize", "10M")
	v.SetDefault("attendance.excellentThreshold", 90)
	v.SetDefault("attendance.atRiskThreshold", 75)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	v.AutomaticEnv()

	return &Config{
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		SecretKey:        v.GetString("secretKey"),
		DefaultFromEmail: v.GetString("defaultFromEmail"),
		SendgridAPIKey:   v.GetString("sendgridAPIKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		Currency:         v.GetString("currency"),
		Server: ServerConfig{
			Address:            v.GetString("server.address"),
			DebugAddress:       v.GetString("server.debugAddress"),
			ReadTimeout:        v.GetDuration("server.readTimeout"),
			WriteTimeout:       v.GetDuration("server.writeTimeout"),
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("server.jwtExpirationDelta"),
		},
		Store: StoreConfig{
			Seed:          v.GetBool("store.seed"),
			SequentialIDs: v.GetBool("store.sequentialIDs"),
		},
		OverdueCheckInterval: v.GetDuration("fees.overdueCheckInterval"),
		ImportMaxRows:        v.GetInt("import.maxRows"),
		ImportMaxUploadSize:  v.GetString("import.maxUploadSize"),
		ExcellentAttendance:  v.GetInt("attendance.excellentThreshold"),
		AtRiskAttendance:     v.GetInt("attendance.atRiskThreshold"),
	}
}
