package tass

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable which holds the directory of conf.toml.
const ConfigEnv = "TASS_CONFIG"

// Config is the runtime configuration of the tools built on the theory.
type Config struct {
	DataDir        string  // directory of the 32 series files
	EphemerisFile  string  // JPL DE binary file
	VSOP87Dir      string  // VSOP87B files, used without a JPL ephemeris
	OutputDir      string  // where generated files are written
	ChebyshevOrder int     // coefficients per component
	ChebyshevStep  float64 // days per Chebyshev record
	OffsetMethod   string  // simplified or rigorous
}

// SetConfigDefaults registers the default values on the provided viper instance.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("data.directory", "./data")
	v.SetDefault("general.output_path", ".")
	v.SetDefault("chebyshev.order", 12)
	v.SetDefault("chebyshev.step", 4.0)
	v.SetDefault("chebyshev.method", Rigorous.String())
}

// NewConfigViper returns a viper instance set up for conf.toml in the
// directory of TASS_CONFIG, if any, and with TASS_ prefixed environment
// overrides. Nothing is read yet.
func NewConfigViper() *viper.Viper {
	v := viper.New()
	SetConfigDefaults(v)
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	if dir := os.Getenv(ConfigEnv); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("TASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads conf.toml (a missing file is not an error) and returns the configuration.
func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrap(err, "reading configuration")
		}
	}
	return ConfigFromViper(v)
}

// ConfigFromViper returns the configuration from already loaded values.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	conf := Config{
		DataDir:        v.GetString("data.directory"),
		EphemerisFile:  v.GetString("ephemeris.file"),
		VSOP87Dir:      v.GetString("ephemeris.vsop87"),
		OutputDir:      v.GetString("general.output_path"),
		ChebyshevOrder: v.GetInt("chebyshev.order"),
		ChebyshevStep:  v.GetFloat64("chebyshev.step"),
		OffsetMethod:   v.GetString("chebyshev.method"),
	}
	if conf.ChebyshevOrder < 1 {
		return conf, errors.Wrapf(ErrChebyshevOrder, "chebyshev.order=%d", conf.ChebyshevOrder)
	}
	if conf.ChebyshevStep <= 0 {
		return conf, errors.Errorf("chebyshev.step must be positive, got %f", conf.ChebyshevStep)
	}
	if _, err := OffsetMethodFromString(conf.OffsetMethod); err != nil {
		return conf, err
	}
	return conf, nil
}

// Method returns the offset method of this configuration.
func (c Config) Method() OffsetMethod {
	m, _ := OffsetMethodFromString(c.OffsetMethod)
	return m
}
