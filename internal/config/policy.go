package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PolicyConfig carries HR business parameters that operations may tune
// without a redeploy.
type PolicyConfig struct {
	// LeaveAllowance is the number of leave days per month that do not
	// count toward loss of pay.
	LeaveAllowance int `mapstructure:"leaveAllowance"`

	// TokenTTLHours bounds the lifetime of issued admin tokens.
	TokenTTLHours int `mapstructure:"tokenTTLHours"`
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		LeaveAllowance: 2,
		TokenTTLHours:  2,
	}
}

// PolicyHolder exposes the current policy and hot-reloads it when the
// backing file changes.
type PolicyHolder struct {
	current atomic.Value // holds PolicyConfig
}

func NewPolicyHolder() (*PolicyHolder, error) {
	v := viper.New()

	v.SetConfigName("policy")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/rollcall/config") // Volume-mounted config
	v.AddConfigPath("/etc/rollcall")            // System config
	v.AddConfigPath(".")                        // Current directory (dev mode)

	v.SetEnvPrefix("ROLLCALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPolicyConfig()
	v.SetDefault("policy.leaveAllowance", defaults.LeaveAllowance)
	v.SetDefault("policy.tokenTTLHours", defaults.TokenTTLHours)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PolicyConfig
	if err := v.UnmarshalKey("policy", &cfg); err != nil {
		return nil, err
	}
	if err := validatePolicyConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PolicyHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PolicyConfig
		if err := v.UnmarshalKey("policy", &updated); err != nil {
			log.Printf("[policy-config] reload failed: %v", err)
			return
		}
		if err := validatePolicyConfig(updated); err != nil {
			log.Printf("[policy-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[policy-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPolicyHolder returns a holder pinned to the given policy.
// Intended for tests.
func NewStaticPolicyHolder(cfg PolicyConfig) *PolicyHolder {
	holder := &PolicyHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PolicyHolder) Get() PolicyConfig {
	return h.current.Load().(PolicyConfig)
}

func validatePolicyConfig(cfg PolicyConfig) error {
	if cfg.LeaveAllowance < 0 {
		return errors.New("policy.leaveAllowance cannot be negative")
	}
	if cfg.TokenTTLHours <= 0 {
		return errors.New("policy.tokenTTLHours must be positive")
	}
	return nil
}
