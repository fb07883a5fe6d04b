package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ejoy/idmand/idman"
	"github.com/spf13/viper"
	"github.com/xjdrew/glog"
)

var glbManager *idman.SafeManager[uint32]

const SIG_RELOAD = syscall.Signal(34)
const SIG_STATUS = syscall.Signal(35)

func status() {
	glog.Infof("status:\n\t"+
		"procs:%d/%d\n\t"+
		"goroutines:%d\n\t"+
		"free:%s",
		runtime.GOMAXPROCS(0), runtime.NumCPU(),
		runtime.NumGoroutine(),
		glbManager.Dump())
}

func handleSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, SIG_RELOAD, SIG_STATUS, syscall.SIGTERM)

	for sig := range c {
		switch sig {
		case SIG_RELOAD:
			reloadConfig()
		case SIG_STATUS:
			status()
		case syscall.SIGTERM:
			glog.Info("catch sigterm, ignore")
		}
	}
}

func main() {
	configFile := flag.String("config", "", "config file")
	flag.Parse()

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
		if err := viper.ReadInConfig(); err != nil {
			glog.Exitf("read config failed: %s", err.Error())
		}
	}
	glog.Info(marshalConfigFile())

	manager, err := newManagerFromConfig()
	if err != nil {
		glog.Exitf("create id manager failed: %s", err.Error())
	}
	glbManager = manager

	if err = applyReserved(); err != nil {
		glog.Exitf("apply reserved failed: %s", err.Error())
	}

	if err = startAdmin(viper.GetString("admin")); err != nil {
		glog.Exitf("start admin failed: %s", err.Error())
	}

	handleSignal()
}
