package main

import (
	"fmt"
	"math"

	"github.com/ejoy/idmand/idman"
	"github.com/spf13/viper"
	"github.com/xjdrew/glog"
	yaml "gopkg.in/yaml.v2"
)

// init default configure
func init() {
	viper.SetDefault("admin", "127.0.0.1:6620") // admin: listen address, 为空表示不启用管理功能

	viper.SetDefault("id.policy", "slow") // id.policy: slow|fast, slow 延迟重用已释放的 id，直到游标绕回
	viper.SetDefault("id.min", 1)         // id.min: 分配范围下界
	viper.SetDefault("id.max", 65535)     // id.max: 分配范围上界

	// reserved: [{lower: 1, upper: 16}, ...] 启动和 reload 时标记为已用
}

type reservedRange struct {
	Lower uint32 `mapstructure:"lower"`
	Upper uint32 `mapstructure:"upper"`
}

func marshalConfigFile() (s string) {
	c := viper.AllSettings()
	b, err := yaml.Marshal(c)
	if err != nil {
		glog.Errorf("marshal failed: err=%s", err.Error())
		return
	}
	// print current config
	s = fmt.Sprintf(`####### idmand configuration #######
# config file %s
%s
####### end #######`, viper.ConfigFileUsed(), string(b))
	return
}

func newManagerFromConfig() (*idman.SafeManager[uint32], error) {
	var policy idman.ReusePolicy
	switch name := viper.GetString("id.policy"); name {
	case "fast":
		policy = idman.ReuseFast
	case "slow":
		policy = idman.ReuseSlow
	default:
		return nil, fmt.Errorf("unknown reuse policy: %s", name)
	}

	minID := viper.GetInt64("id.min")
	maxID := viper.GetInt64("id.max")
	if minID < 0 || maxID < 0 || minID > math.MaxUint32 || maxID > math.MaxUint32 {
		return nil, fmt.Errorf("id range exceeds uint32: [%d,%d]", minID, maxID)
	}

	return idman.NewSafeManagerRange(policy, uint32(minID), uint32(maxID))
}

// applyReserved marks the configured reserved ranges as used. Values that
// are already in use are skipped by the manager.
func applyReserved() error {
	var reserved []reservedRange
	if err := viper.UnmarshalKey("reserved", &reserved); err != nil {
		return err
	}
	for _, r := range reserved {
		if err := glbManager.MarkIntervalAsUsed(r.Lower, r.Upper); err != nil {
			return fmt.Errorf("reserve [%d,%d]: %s", r.Lower, r.Upper, err.Error())
		}
		idMarks.Inc()
		glog.Infof("reserved: lower=%d, upper=%d", r.Lower, r.Upper)
	}
	return nil
}

func reloadConfig() (err error) {
	glog.Info("load config")

	// try to load config from disk
	if viper.ConfigFileUsed() == "" {
		if glog.V(3) {
			glog.Error("no config file used")
		}
		return
	}

	if err = viper.ReadInConfig(); err != nil {
		glog.Errorf("read configuration failed: %s", err.Error())
		return
	}

	// print current config
	glog.Info(marshalConfigFile())

	// id range and reuse policy are fixed for the manager's lifetime; only
	// reserved ranges are re-applied
	if err = applyReserved(); err != nil {
		glog.Errorf("apply reserved failed: %s", err.Error())
		return
	}
	return
}
