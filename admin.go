package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xjdrew/glog"
)

func parseID(req *http.Request, key string) (uint32, error) {
	v, err := strconv.ParseUint(req.URL.Query().Get(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %s", key, err.Error())
	}
	return uint32(v), nil
}

func handleAlloc(w http.ResponseWriter, _ *http.Request) {
	id, err := glbManager.Allocate()
	if err != nil {
		idAllocateFails.Inc()
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	idAllocates.Inc()
	if glog.V(1) {
		glog.Infof("allocate: id=%d", id)
	}
	fmt.Fprintf(w, "%d", id)
}

func handleFree(w http.ResponseWriter, req *http.Request) {
	id, err := parseID(req, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = glbManager.Free(id); err != nil {
		idFreeFails.Inc()
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	idFrees.Inc()
	if glog.V(1) {
		glog.Infof("free: id=%d", id)
	}
	io.WriteString(w, "succeed")
}

func handleMark(w http.ResponseWriter, req *http.Request) {
	lower, err := parseID(req, "lower")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	upper, err := parseID(req, "upper")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = glbManager.MarkIntervalAsUsed(lower, upper); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	idMarks.Inc()
	if glog.V(1) {
		glog.Infof("mark used: lower=%d, upper=%d", lower, upper)
	}
	io.WriteString(w, "succeed")
}

func startAdmin(laddr string) (err error) {
	if laddr == "" {
		return
	}
	ln, err := net.Listen("tcp", laddr)
	if err != nil {
		glog.Infof("start admin failed: listen=%s, err=%s", laddr, err.Error())
		return
	}
	glog.Infof("start admin: listen=%s", laddr)

	http.HandleFunc("/alloc", handleAlloc)
	http.HandleFunc("/free", handleFree)
	http.HandleFunc("/mark", handleMark)

	http.HandleFunc("/dump", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, glbManager.Dump())
	})

	http.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Content-Type", "text/vnd.yaml")
		io.WriteString(w, marshalConfigFile())
	})

	http.HandleFunc("/reload", func(w http.ResponseWriter, _ *http.Request) {
		err := reloadConfig()
		if err == nil {
			io.WriteString(w, "succeed")
		} else {
			io.WriteString(w, "failed: "+err.Error())
		}
	})

	http.Handle("/metrics", promhttp.Handler())

	go func() {
		defer ln.Close()
		err := http.Serve(ln, nil)
		glog.Errorf("admin exit: err=%v", err)
	}()
	return nil
}
