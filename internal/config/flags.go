package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of every configuration flag after parsing.
// Create it with [BindFlags] before the flag set is parsed.
type Flags struct {
	address               NetAddress
	configPath            string
	primaryConfigPath     string
	secondaryConfigPath   string
	defaultsPath          string
	staticDir             string
	logLevel              string
	registryURL           string
	registryMode          string
	npmBinary             string
	requestTimeout        time.Duration
	registryTimeout       time.Duration
	packageManagerTimeout time.Duration
	scanConcurrency       int
	updateCheckInterval   time.Duration
	disableMCP            bool
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address server address in format [host]:[port]
//	-c/--config JSON or YAML config file path
//	--primary-config primary client config file
//	--secondary-config secondary client config file
//	--defaults default server entries file
//	--static-dir web UI directory
//	--log-level zerolog level name
//	--registry-url npm registry base URL
//	--registry-mode "http" or "npm"
//	--npm-binary package manager executable
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--registry-timeout registry lookup timeout
//	--package-manager-timeout package manager query timeout
//	--scan-concurrency parallel update checks
//	--update-check-interval background update check period, 0 disables
//	--disable-mcp turn off the MCP tool endpoint
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "Net address host:port")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.primaryConfigPath, "primary-config", "", "Primary client config file (full server set)")
	fs.StringVar(&f.secondaryConfigPath, "secondary-config", "", "Secondary client config file (enabled servers only)")
	fs.StringVar(&f.defaultsPath, "defaults", "", "Default server entries file")
	fs.StringVar(&f.staticDir, "static-dir", "", "Web UI directory")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.registryURL, "registry-url", "", "npm registry base URL")
	fs.StringVar(&f.registryMode, "registry-mode", "", "Registry lookup mode (http or npm)")
	fs.StringVar(&f.npmBinary, "npm-binary", "", "Package manager executable")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.registryTimeout, "registry-timeout", 0, "Registry lookup timeout")
	fs.DurationVar(&f.packageManagerTimeout, "package-manager-timeout", 0, "Package manager query timeout")
	fs.IntVar(&f.scanConcurrency, "scan-concurrency", 0, "Number of servers checked in parallel")
	fs.DurationVar(&f.updateCheckInterval, "update-check-interval", 0, "Background update check period (0 disables)")
	fs.BoolVar(&f.disableMCP, "disable-mcp", false, "Disable the MCP tool endpoint")

	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.logLevel,
		},
		Storage: Storage{
			Files: Files{
				PrimaryConfigPath:   f.primaryConfigPath,
				SecondaryConfigPath: f.secondaryConfigPath,
				DefaultsPath:        f.defaultsPath,
			},
		},
		Server: Server{
			HTTPAddress:    f.address.String(),
			RequestTimeout: f.requestTimeout,
			StaticDir:      f.staticDir,
			DisableMCP:     f.disableMCP,
		},
		Adapter: Adapter{
			RegistryURL:           f.registryURL,
			RegistryMode:          f.registryMode,
			RegistryTimeout:       f.registryTimeout,
			NPMBinary:             f.npmBinary,
			PackageManagerTimeout: f.packageManagerTimeout,
		},
		Workers: Workers{
			ScanConcurrency:     f.scanConcurrency,
			UpdateCheckInterval: f.updateCheckInterval,
		},
		ConfigFilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
