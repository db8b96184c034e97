package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// EndpointConfig mirrors one database section (source_db / target_db) of
// db-sync.yaml.
type EndpointConfig struct {
	Type     string `mapstructure:"type"`
	Path     string `mapstructure:"path"` // sqlite only
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	DSN      string `mapstructure:"dsn"` // full descriptor override
}

// Descriptor builds the URI-like connection descriptor the endpoint layer
// consumes. An explicit dsn field wins over the structured fields.
func (c *EndpointConfig) Descriptor() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}

	switch c.Type {
	case "sqlite", "sqlite3":
		path := c.Path
		if path == "" {
			path = ":memory:"
		}
		return "sqlite://" + path, nil

	case "mysql", "postgres", "postgresql", "oracle":
		if c.Host == "" || c.Database == "" {
			return "", fmt.Errorf("%s endpoint requires host and database", c.Type)
		}
		return fmt.Sprintf("%s://%s%s/%s", c.Type, c.credentials(), c.hostPort(), c.Database), nil

	case "sqlserver", "mssql":
		// go-mssqldb takes the database as a query parameter; the path form
		// would be read as an instance name.
		if c.Host == "" || c.Database == "" {
			return "", fmt.Errorf("%s endpoint requires host and database", c.Type)
		}
		return fmt.Sprintf("sqlserver://%s%s?database=%s", c.credentials(), c.hostPort(), c.Database), nil

	case "":
		return "", fmt.Errorf("database type is required")

	default:
		return "", fmt.Errorf("unsupported database type: %s", c.Type)
	}
}

func (c *EndpointConfig) credentials() string {
	if c.User == "" {
		return ""
	}
	cred := c.User
	if c.Password != "" {
		cred += ":" + c.Password
	}
	return cred + "@"
}

func (c *EndpointConfig) hostPort() string {
	if c.Port == 0 {
		return c.Host
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetEndpointConfig reads one of the source_db / target_db config sections.
func GetEndpointConfig(key string) (*EndpointConfig, error) {
	if !viper.IsSet(key) {
		return nil, fmt.Errorf("missing %s section in config", key)
	}
	var c EndpointConfig
	if err := viper.UnmarshalKey(key, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", key, err)
	}
	return &c, nil
}
