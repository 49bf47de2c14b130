package main

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/golang/glog"
)

// Result of one subject over all steps, in ms per benchmark op.
type Result struct {
	Subject string
	Steps   []float64
	Avg     float64
	Stddev  float64
}

// workload inserts keys, removes the first rmv of them and then probes
// both the removed keys and random keys below m. Returns the number of probes
// that hit, which is the same for every correct ordered set.
func workload(s subject, keys []int, rmv int, probes []int) (hits int) {
	for _, v := range keys {
		s.Insert(v)
	}
	for _, v := range keys[:rmv] {
		s.Remove(v)
	}
	for _, v := range keys[:rmv] {
		if s.Has(v) {
			hits++
		}
	}
	for _, v := range probes {
		if s.Has(v) {
			hits++
		}
	}
	return
}

// keys returns n random keys and n probes within the range of the keys.
func keys(rg *rand.Rand, n int) (ks, probes []int) {
	ks = make([]int, n)
	for i := range ks {
		ks[i] = rg.Int()
	}
	m := slices.Max(ks)
	probes = make([]int, n)
	for i := range probes {
		probes[i] = rg.Intn(m)
	}
	return
}

func measure(p Profile) []Result {
	rg := rand.New(rand.NewSource(p.Seed))
	ks, probes := keys(rg, int(p.Adds))
	rs := make([]Result, 0, len(p.Subjects))
	for _, name := range p.Subjects {
		mk := subjects[name]
		r := Result{Subject: name}
		for i := uint32(1); i < p.Steps; i++ {
			rmv := int(p.Adds / p.Steps * i)
			br := testing.Benchmark(func(b *testing.B) {
				for range b.N {
					workload(mk(), ks, rmv, probes[:rmv])
				}
			})
			ms := float64(br.NsPerOp()) / 1e6
			glog.V(1).Infof("%s step %d: removed %d, %.3fms/op over %d ops", name, i, rmv, ms, br.N)
			r.Steps = append(r.Steps, ms)
		}
		r.Avg, r.Stddev = stats(r.Steps)
		glog.Infof("%s: average %.3fms/op, stddev %.3fms/op", name, r.Avg, r.Stddev)
		rs = append(rs, r)
	}
	return rs
}

func stats(xs []float64) (avg, stddev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		avg += x
	}
	avg /= float64(len(xs))
	for _, x := range xs {
		d := x - avg
		stddev += d * d
	}
	return avg, math.Sqrt(stddev / float64(len(xs)))
}
