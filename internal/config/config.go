package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Server
		Audit
		Snapshot
		ReadOnly
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Server struct {
		GinMode string // debug, release or test
	}
	Audit struct {
		Enabled         bool
		DatabasePath    string
		RetentionDays   int    // Days to keep audit events (default: 30)
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Snapshot struct {
		Enabled  bool
		Dir      string
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	ReadOnly struct {
		Enabled bool // Reject POST, PUT and DELETE with 403
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("gin_mode", "release")

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_database_path", DefaultAuditDatabasePath)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", DefaultAuditCleanupSchedule)

	v.SetDefault("snapshot_enabled", false)
	v.SetDefault("snapshot_dir", DefaultSnapshotDir)
	v.SetDefault("snapshot_schedule", DefaultSnapshotSchedule)

	v.SetDefault("read_only_mode", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Server: Server{
			GinMode: v.GetString("GIN_MODE"),
		},
		Audit: Audit{
			Enabled:         v.GetBool("AUDIT_ENABLED"),
			DatabasePath:    v.GetString("AUDIT_DATABASE_PATH"),
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Snapshot: Snapshot{
			Enabled:  v.GetBool("SNAPSHOT_ENABLED"),
			Dir:      v.GetString("SNAPSHOT_DIR"),
			Schedule: v.GetString("SNAPSHOT_SCHEDULE"),
		},
		ReadOnly: ReadOnly{
			Enabled: v.GetBool("READ_ONLY_MODE"),
		},
	}
}
