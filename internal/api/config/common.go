package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RandomOrg RandomOrgConfig `mapstructure:"randomorg"`
	Game      GameConfig      `mapstructure:"game"`
	Cron      CronConfig      `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// RandomOrgConfig 外部真随机数服务配置
type RandomOrgConfig struct {
	URL            string `mapstructure:"url"`
	ApiKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// GameConfig 玩法参数
type GameConfig struct {
	Type  string `mapstructure:"type"`
	Count int    `mapstructure:"count"`
	Min   int    `mapstructure:"min"`
	Max   int    `mapstructure:"max"`
}

type CronConfig struct {
	DedupeSpec string `mapstructure:"dedupe_spec"`
}
