package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

const (
	// All constant strings are used for CLI flag names and corresponding keys for config values.
	dbBackend        = "db-backend"
	dbReadRefTime    = "db-read-ref-time"
	dbReadProofSize  = "db-read-proof-size"
	dbWriteRefTime   = "db-write-ref-time"
	dbWriteProofSize = "db-write-proof-size"

	// EnvPrefix is the prefix of environment variables overriding config values,
	// e.g. XCM_WEIGHTS_DB_BACKEND.
	EnvPrefix = "XCM_WEIGHTS"
)

const (
	BackendRocksDb  = "rocksdb"
	BackendParityDb = "paritydb"
	BackendCustom   = "custom"
)

func AllDbWeightFlagNames() []string {
	return []string{dbBackend, dbReadRefTime, dbReadProofSize, dbWriteRefTime, dbWriteProofSize}
}

// DbWeightConfig selects the storage access cost applied to weight tables.
// The per-access costs are only used by the custom backend.
type DbWeightConfig struct {
	Backend        string `mapstructure:"db-backend"`
	ReadRefTime    uint64 `mapstructure:"db-read-ref-time"`
	ReadProofSize  uint64 `mapstructure:"db-read-proof-size"`
	WriteRefTime   uint64 `mapstructure:"db-write-ref-time"`
	WriteProofSize uint64 `mapstructure:"db-write-proof-size"`
}

// DefaultDbWeightConfig returns the RocksDB configuration.
func DefaultDbWeightConfig() *DbWeightConfig {
	return &DbWeightConfig{
		Backend:      BackendRocksDb,
		ReadRefTime:  weight.RocksDbWeight.Read.RefTime,
		WriteRefTime: weight.RocksDbWeight.Write.RefTime,
	}
}

// InitializeDbWeightFlags registers the db weight flags on the provided pflag set,
// using config for the default values.
func InitializeDbWeightFlags(flags *pflag.FlagSet, config *DbWeightConfig) {
	flags.String(dbBackend, config.Backend, fmt.Sprintf("storage backend whose access cost is applied (%s, %s or %s)", BackendRocksDb, BackendParityDb, BackendCustom))
	flags.Uint64(dbReadRefTime, config.ReadRefTime, "ref time of one storage read in picoseconds (custom backend only)")
	flags.Uint64(dbReadProofSize, config.ReadProofSize, "proof size of one storage read in bytes (custom backend only)")
	flags.Uint64(dbWriteRefTime, config.WriteRefTime, "ref time of one storage write in picoseconds (custom backend only)")
	flags.Uint64(dbWriteProofSize, config.WriteProofSize, "proof size of one storage write in bytes (custom backend only)")
}

// NewViper returns a viper instance that reads the optional config file at
// path, environment variables prefixed with EnvPrefix, and the given flags,
// in increasing order of precedence.
func NewViper(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return v, nil
}

// LoadDbWeightConfig decodes the db weight configuration held by v. Keys
// absent from v keep their default value.
func LoadDbWeightConfig(v *viper.Viper) (*DbWeightConfig, error) {
	config := DefaultDbWeightConfig()
	for _, key := range AllDbWeightFlagNames() {
		// AutomaticEnv only applies to keys viper knows about
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode db weight config: %w", err)
	}
	return config, nil
}

// DbWeight resolves the configured backend to a per-access cost.
func (c *DbWeightConfig) DbWeight() (weight.RuntimeDbWeight, error) {
	switch strings.ToLower(c.Backend) {
	case BackendRocksDb:
		return weight.RocksDbWeight, nil
	case BackendParityDb:
		return weight.ParityDbWeight, nil
	case BackendCustom:
		return weight.RuntimeDbWeight{
			Read:  weight.FromParts(c.ReadRefTime, c.ReadProofSize),
			Write: weight.FromParts(c.WriteRefTime, c.WriteProofSize),
		}, nil
	default:
		return weight.RuntimeDbWeight{}, fmt.Errorf("unknown db backend %q", c.Backend)
	}
}
