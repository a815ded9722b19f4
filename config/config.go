package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"

	DefaultDateLayout = "2006/1/2 15:04:05"
	DefaultUploadDir  = "uploads"
	DefaultMaxUpload  = 50 << 20
)

type Config struct {
	Addr string

	DBDriver   string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	UploadDir     string
	MaxUploadSize int64

	CORSOrigins []string
	DateLayout  string
	Debug       bool
}

// ParseFlags reads an optional .env file, then parses the command line
// using the environment for flag defaults.
func ParseFlags() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config.dotenv: %w", err)
	}
	return Parse(os.Args[1:], os.Getenv)
}

func Parse(args []string, getenv func(string) string) (cfg Config, err error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("survey-backend", flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", env("HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", envUint(env("PORT", ""), 3000), "listen port number")

	fs.StringVar(&cfg.DBDriver, "db-driver", env("DB_DRIVER", DriverMySQL), "database driver (mysql or sqlite3)")
	fs.StringVar(&cfg.DBHost, "db-host", env("DB_HOST", ""), "MySQL host")
	var dbPort uint
	fs.UintVar(&dbPort, "db-port", envUint(env("DB_PORT", ""), 3306), "MySQL port")
	fs.StringVar(&cfg.DBUser, "db-user", env("DB_USER", ""), "MySQL user")
	fs.StringVar(&cfg.DBPassword, "db-password", env("DB_PASSWORD", ""), "MySQL password")
	fs.StringVar(&cfg.DBName, "db-name", env("DB_NAME", ""), "MySQL database name")
	fs.StringVar(&cfg.DBPath, "db-path", env("DB_PATH", "survey.sqlite"), "path to SQLite3 DB file")

	fs.StringVar(&cfg.UploadDir, "upload-dir", env("UPLOAD_DIR", DefaultUploadDir), "directory for uploaded files")
	var origins string
	fs.StringVar(&origins, "cors-origins", env("CORS_ORIGINS", "*"), "comma separated list of allowed CORS origins")
	fs.StringVar(&cfg.DateLayout, "date-layout", env("DATE_LAYOUT", DefaultDateLayout), "Go time layout for survey dates")

	debug, _ := strconv.ParseBool(env("DEBUG", "false"))
	fs.BoolVar(&cfg.Debug, "debug", debug, "log at DEBUG level")

	if err = fs.Parse(args); err != nil {
		return
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.DBPort = int(dbPort)
	cfg.MaxUploadSize = DefaultMaxUpload
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	err = cfg.Validate()
	return
}

func envUint(s string, def uint) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return def
	}
	return uint(n)
}

// Validate reports every missing or inconsistent setting at once.
func (cfg Config) Validate() error {
	var result *multierror.Error

	switch cfg.DBDriver {
	case DriverMySQL:
		if cfg.DBHost == "" {
			result = multierror.Append(result, errors.New("missing DB_HOST"))
		}
		if cfg.DBUser == "" {
			result = multierror.Append(result, errors.New("missing DB_USER"))
		}
		if cfg.DBName == "" {
			result = multierror.Append(result, errors.New("missing DB_NAME"))
		}
	case DriverSQLite:
		if cfg.DBPath == "" {
			result = multierror.Append(result, errors.New("missing DB_PATH"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}

	if cfg.UploadDir == "" {
		result = multierror.Append(result, errors.New("missing UPLOAD_DIR"))
	}
	if cfg.DateLayout == "" {
		result = multierror.Append(result, errors.New("missing DATE_LAYOUT"))
	}

	return result.ErrorOrNil()
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
