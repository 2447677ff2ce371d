package allocation

import "fmt"

// Config defines the balancing thresholds. Zero values are replaced by the
// operational defaults the distribution has always run with.
type Config struct {
	// SufficiencyThreshold is the workload level buyers are balanced toward.
	SufficiencyThreshold float64 `json:"sufficiency_threshold"`
	// DefaultQuota caps the occurrence units a buyer may receive in one run.
	DefaultQuota int `json:"default_quota"`
	// ReducedQuota replaces DefaultQuota for buyers already at the threshold.
	ReducedQuota int `json:"reduced_quota"`
	// MaxCycleTime is the eligibility ceiling on average cycle time.
	MaxCycleTime float64 `json:"max_cycle_time"`
	// MaxInProgress is the eligibility ceiling on in-progress processes.
	MaxInProgress float64 `json:"max_in_progress"`
}

// SetDefaults applies the standard thresholds.
func (c *Config) SetDefaults() {
	if c.SufficiencyThreshold == 0 {
		c.SufficiencyThreshold = 120
	}
	if c.DefaultQuota == 0 {
		c.DefaultQuota = 15
	}
	if c.ReducedQuota == 0 {
		c.ReducedQuota = 2
	}
	if c.MaxCycleTime == 0 {
		c.MaxCycleTime = 160
	}
	if c.MaxInProgress == 0 {
		c.MaxInProgress = 16
	}
}

// Validate checks the thresholds are coherent.
func (c Config) Validate() error {
	if c.SufficiencyThreshold < 0 {
		return fmt.Errorf("sufficiency_threshold must not be negative")
	}
	if c.DefaultQuota <= 0 {
		return fmt.Errorf("default_quota must be positive")
	}
	if c.ReducedQuota <= 0 {
		return fmt.Errorf("reduced_quota must be positive")
	}
	if c.ReducedQuota > c.DefaultQuota {
		return fmt.Errorf("reduced_quota must not exceed default_quota")
	}
	return nil
}
