package config

import (
	"github.com/spf13/viper"

	"github.com/spandan-mozumder/solfund/internal/logger"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// LedgerConfig 台账配置，租金为记录账户必须保留的最低押金
type LedgerConfig struct {
	StateRent       uint64 `mapstructure:"state_rent"`       // 程序状态记录押金
	CampaignRent    uint64 `mapstructure:"campaign_rent"`    // 活动记录押金
	TransactionRent uint64 `mapstructure:"transaction_rent"` // 凭证记录押金
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"`  // 秒
	PoolSize int `mapstructure:"pool_size"` // 对账协程池大小
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/solfund")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "solfund")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("ledger.state_rent", 2000000)
	viper.SetDefault("ledger.campaign_rent", 6000000)
	viper.SetDefault("ledger.transaction_rent", 2000000)
	viper.SetDefault("scheduler.interval", 60)
	viper.SetDefault("scheduler.pool_size", 8)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
