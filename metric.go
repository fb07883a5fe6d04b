package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	idAllocates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idmand_allocates",
		Help: "times of handing out an id",
	})

	idAllocateFails = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idmand_allocate_fails",
		Help: "failed times of handing out an id",
	})

	idFrees = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idmand_frees",
		Help: "times of returning an id to the pool",
	})

	idFreeFails = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idmand_free_fails",
		Help: "failed times of returning an id to the pool",
	})

	idMarks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idmand_marks",
		Help: "times of marking an id range as used",
	})
)

func init() {
	prometheus.MustRegister(idAllocates)
	prometheus.MustRegister(idAllocateFails)
	prometheus.MustRegister(idFrees)
	prometheus.MustRegister(idFreeFails)
	prometheus.MustRegister(idMarks)
}
